package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

const maxBodyBytes = 1 << 20

var (
	// ErrInvalidJSON возвращается при некорректном теле запроса
	ErrInvalidJSON = errors.New("handlers: invalid json body")

	// ErrValidation возвращается, когда тело запроса не прошло валидацию
	ErrValidation = errors.New("handlers: validation failed")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("handlers: invalid date")

	// ErrInvalidID возвращается, когда идентификатор в пути не является UUID
	ErrInvalidID = errors.New("handlers: invalid id")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeJSON декодирует тело запроса; неизвестные поля отклоняются
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("%w: empty body", ErrInvalidJSON)
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	// Допускается только один JSON объект
	if decoder.More() {
		return fmt.Errorf("%w: unexpected data after json object", ErrInvalidJSON)
	}

	return nil
}

// DecodeAndValidate декодирует тело запроса и проверяет теги validate
func DecodeAndValidate(r *http.Request, v interface{}) error {
	if err := DecodeJSON(r, v); err != nil {
		return err
	}

	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, ValidationMessage(err))
	}

	return nil
}

// ValidationMessage собирает читаемое описание ошибок валидации
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s: %s", fe.Namespace(), fe.Tag()))
		}
	}

	return strings.Join(parts, "; ")
}

// ParseDate принимает дату YYYY-MM-DD или метку времени RFC3339
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidDate)
	}

	if t, err := time.Parse(domain.DateFormat, s); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	return t.UTC(), nil
}

// PathID читает идентификатор из пути и проверяет, что это UUID
func PathID(r *http.Request, name string) (string, error) {
	raw := mux.Vars(r)[name]

	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s=%q", ErrInvalidID, name, raw)
	}

	return id.String(), nil
}

// OptionalQuery возвращает указатель на параметр запроса или nil, если он пустой
func OptionalQuery(r *http.Request, name string) *string {
	value := strings.TrimSpace(r.URL.Query().Get(name))
	if value == "" {
		return nil
	}
	return &value
}
