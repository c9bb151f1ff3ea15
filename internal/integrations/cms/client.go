package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"
)

const (
	defaultCompanionsPageSize = 99
	defaultCompanionsSort     = "likes:desc"
)

var numericID = regexp.MustCompile(`^\d+$`)

// Client клиент headless CMS (бронирования, компаньоны, авторизация, тексты панели)
type Client struct {
	baseURL    string
	apiToken   string
	locale     string
	httpClient *http.Client
	log        Logger
	recorder   Recorder
}

// Option настройка клиента
type Option func(*Client)

// WithAPIToken сервисный токен для запросов к бронированиям и компаньонам
func WithAPIToken(token string) Option {
	return func(c *Client) { c.apiToken = token }
}

// WithLocale локаль по умолчанию
func WithLocale(locale string) Option {
	return func(c *Client) { c.locale = locale }
}

// WithRecorder метрики запросов
func WithRecorder(r Recorder) Option {
	return func(c *Client) { c.recorder = r }
}

// NewClient создает новый экземпляр клиента CMS
func NewClient(baseURL string, timeout time.Duration, log Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		locale:  "pl",
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// request параметры одного запроса к CMS
type request struct {
	operation string
	method    string
	path      string
	query     url.Values
	body      interface{}
	token     string
	noCache   bool
}

// ListBookings получает все бронирования с компаньоном, минуя кэш
func (c *Client) ListBookings(ctx context.Context) ([]Booking, error) {
	var envelope listEnvelope[Booking]

	err := c.do(ctx, request{
		operation: "list_bookings",
		method:    http.MethodGet,
		path:      "/api/bookings",
		query:     url.Values{"populate": {"companion"}},
		token:     c.apiToken,
		noCache:   true,
	}, &envelope)
	if err != nil {
		return nil, err
	}

	if envelope.Data == nil {
		return []Booking{}, nil
	}

	for i := range envelope.Data {
		if err := envelope.Data[i].Validate(); err != nil {
			return nil, fmt.Errorf("%w: booking at index %d", err, i)
		}
	}

	return envelope.Data, nil
}

// UpdateBookingStatus выставляет currentStatus бронированию и возвращает обновленный объект CMS
func (c *Client) UpdateBookingStatus(ctx context.Context, id string, status string) (json.RawMessage, error) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}

	err := c.do(ctx, request{
		operation: "update_booking_status",
		method:    http.MethodPut,
		path:      "/api/bookings/" + url.PathEscape(id),
		body:      updateStatusRequest{Data: updateStatusData{CurrentStatus: status}},
		token:     c.apiToken,
	}, &envelope)
	if err != nil {
		return nil, err
	}

	return envelope.Data, nil
}

// Login авторизация по логину/email и паролю
func (c *Client) Login(ctx context.Context, identifier, password string) (*AuthResponse, error) {
	var resp AuthResponse

	err := c.do(ctx, request{
		operation: "login",
		method:    http.MethodPost,
		path:      "/api/auth/local",
		body:      LoginRequest{Identifier: identifier, Password: password},
	}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.JWT == "" {
		return nil, fmt.Errorf("%w: empty jwt in login response", ErrInvalidResponse)
	}

	return &resp, nil
}

// ForgotPassword запрашивает письмо для сброса пароля
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, request{
		operation: "forgot_password",
		method:    http.MethodPost,
		path:      "/api/auth/forgot-password",
		body:      forgotPasswordRequest{Email: email},
	}, nil)
}

// GetProfile получает текущего пользователя по его JWT
func (c *Client) GetProfile(ctx context.Context, jwt string) (*User, error) {
	var user User

	err := c.do(ctx, request{
		operation: "get_profile",
		method:    http.MethodGet,
		path:      "/api/users/me",
		query:     url.Values{"populate": {"role"}},
		token:     jwt,
	}, &user)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ListCompanions список компаньонов галереи (по умолчанию по убыванию лайков, только с фото)
func (c *Client) ListCompanions(ctx context.Context, q CompanionsQuery) (*CompanionList, error) {
	if q.Locale == "" {
		q.Locale = c.locale
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = defaultCompanionsPageSize
	}
	if q.Sort == "" {
		q.Sort = defaultCompanionsSort
	}

	query := url.Values{}
	query.Set("locale", q.Locale)
	query.Set("sort", q.Sort)
	query.Set("pagination[page]", strconv.Itoa(q.Page))
	query.Set("pagination[pageSize]", strconv.Itoa(q.PageSize))
	query.Set("populate", "image")
	if q.WithImage {
		query.Set("filters[image][id][$notNull]", "true")
	}

	var envelope listEnvelope[Companion]
	err := c.do(ctx, request{
		operation: "list_companions",
		method:    http.MethodGet,
		path:      "/api/companions",
		query:     query,
		token:     c.apiToken,
	}, &envelope)
	if err != nil {
		return nil, err
	}

	if envelope.Data == nil {
		envelope.Data = []Companion{}
	}

	return &CompanionList{Data: envelope.Data, Meta: envelope.Meta}, nil
}

// GetCompanion профиль компаньона по documentId
func (c *Client) GetCompanion(ctx context.Context, documentID, locale string) (*Companion, error) {
	if locale == "" {
		locale = c.locale
	}

	var envelope itemEnvelope[Companion]
	err := c.do(ctx, request{
		operation: "get_companion",
		method:    http.MethodGet,
		path:      "/api/companions/" + url.PathEscape(documentID),
		query:     url.Values{"locale": {locale}, "populate": {"*"}},
		token:     c.apiToken,
	}, &envelope)
	if err != nil {
		return nil, err
	}

	if envelope.Data == nil {
		return nil, ErrNotFound
	}

	return envelope.Data, nil
}

// LikeCompanion добавляет лайк компаньону
func (c *Client) LikeCompanion(ctx context.Context, documentID string) (json.RawMessage, error) {
	var raw json.RawMessage

	err := c.do(ctx, request{
		operation: "like_companion",
		method:    http.MethodPost,
		path:      "/api/companions/document/" + url.PathEscape(documentID) + "/like",
		token:     c.apiToken,
	}, &raw)
	if err != nil {
		return nil, err
	}

	return raw, nil
}

// GetCompanionAvailability слоты компаньона по event type.
// Нечисловой id или недоступность CMS дают пустые слоты без ошибки.
func (c *Client) GetCompanionAvailability(ctx context.Context, eventTypeID string) *Availability {
	if !numericID.MatchString(eventTypeID) {
		return &Availability{}
	}

	var availability Availability
	err := c.do(ctx, request{
		operation: "get_availability",
		method:    http.MethodGet,
		path:      "/api/companions/event-type/" + eventTypeID + "/availability",
		token:     c.apiToken,
	}, &availability)
	if err != nil {
		c.log.Warn("Failed to fetch availability for event_type_id=%s, returning empty slots: %v", eventTypeID, err)
		return &Availability{}
	}

	return &availability
}

// GetPanelTexts тексты админ-панели для локали
func (c *Client) GetPanelTexts(ctx context.Context, locale string) (*PanelTexts, error) {
	if locale == "" {
		locale = c.locale
	}

	var envelope itemEnvelope[PanelTexts]
	err := c.do(ctx, request{
		operation: "get_panel_texts",
		method:    http.MethodGet,
		path:      "/api/admin-panel-text",
		query:     url.Values{"locale": {locale}},
		token:     c.apiToken,
	}, &envelope)
	if err != nil {
		return nil, err
	}

	if envelope.Data == nil {
		return nil, ErrNotFound
	}

	return envelope.Data, nil
}

// do выполняет запрос, разбирает статус-код и декодирует ответ в out (если out != nil)
func (c *Client) do(ctx context.Context, r request, out interface{}) (err error) {
	start := time.Now()
	defer func() {
		if c.recorder == nil {
			return
		}
		result := "ok"
		if err != nil {
			result = "error"
		}
		c.recorder.ObserveCMSRequest(r.operation, result, time.Since(start))
	}()

	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}
	if r.noCache {
		req.Header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
		req.Header.Set("Pragma", "no-cache")
		req.Header.Set("Expires", "0")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, errorMessage(resp.Body))
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, errorMessage(resp.Body))
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	default:
		payload, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(payload))
	}

	if out == nil {
		return nil
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// errorMessage достает error.message из ответа CMS
func errorMessage(body io.Reader) string {
	payload, _ := io.ReadAll(body)

	var errResp ErrorResponse
	if err := json.Unmarshal(payload, &errResp); err == nil && errResp.Error.Message != "" {
		return errResp.Error.Message
	}

	return string(payload)
}
