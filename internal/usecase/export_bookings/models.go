package export_bookings

// Request модель запроса выгрузки
type Request struct {
	SessionID string
}

// Response готовый файл выгрузки
type Response struct {
	FileName string
	Content  []byte
	Count    int
}
