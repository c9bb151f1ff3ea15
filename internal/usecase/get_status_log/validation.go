package get_status_log

import "fmt"

const maxLimit = 500

func validateRequest(req *Request) error {
	if req.Limit < 0 || req.Limit > maxLimit {
		return fmt.Errorf("%w: limit must be between 0 and %d", ErrInvalidInput, maxLimit)
	}
	if req.Offset < 0 {
		return fmt.Errorf("%w: offset must not be negative", ErrInvalidInput)
	}
	return nil
}
