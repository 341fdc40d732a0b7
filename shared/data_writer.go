package shared

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

var jsonAPI = sonic.Config{
	UseNumber:            true,
	EscapeHTML:           false,
	SortMapKeys:          false,
	CompactMarshaler:     true,
	NoQuoteTextMarshaler: true,
	NoNullSliceOrMap:     true,
}.Froze()

// JSONMarshal and JSONUnmarshal are plugged into fiber.Config so request
// parsing and responses share one sonic configuration.
func JSONMarshal(v interface{}) ([]byte, error) {
	return jsonAPI.Marshal(v)
}

func JSONUnmarshal(data []byte, v interface{}) error {
	return jsonAPI.Unmarshal(data, v)
}

var (
	successResponse          = mustMarshal(Response{Code: 200, Message: "Success"})
	notFoundResponse         = mustMarshal(Response{Code: 404, Message: "Not Found"})
	unauthorizedResponse     = mustMarshal(Response{Code: 401, Message: "Unauthorized"})
	badRequestResponse       = mustMarshal(Response{Code: 400, Message: "Bad Request"})
	tooManyRequestsResponse  = mustMarshal(Response{Code: 429, Message: "Too Many Requests"})
	internalErrorResponse    = mustMarshal(Response{Code: 500, Message: "Internal Server Error"})
	serviceUnavailableResult = mustMarshal(Response{Code: 503, Message: "Service Unavailable"})
)

func mustMarshal(v interface{}) []byte {
	b, _ := jsonAPI.Marshal(v)
	return b
}

func cachedResponse(httpCode int, message string) []byte {
	switch httpCode {
	case 200:
		if message == "Success" {
			return successResponse
		}
	case 400:
		if message == "Bad Request" {
			return badRequestResponse
		}
	case 401:
		if message == "Unauthorized" {
			return unauthorizedResponse
		}
	case 404:
		if message == "Not Found" {
			return notFoundResponse
		}
	case 429:
		if message == "Too Many Requests" {
			return tooManyRequestsResponse
		}
	case 500:
		if message == "Internal Server Error" {
			return internalErrorResponse
		}
	case 503:
		if message == "Service Unavailable" {
			return serviceUnavailableResult
		}
	}
	return nil
}

func ResponseJSON(c *fiber.Ctx, httpCode int, message string, data interface{}) error {
	if data == nil {
		if body := cachedResponse(httpCode, message); body != nil {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
			return c.Status(httpCode).Send(body)
		}
	}

	body, err := jsonAPI.Marshal(Response{
		Code:    httpCode,
		Message: message,
		Data:    data,
	})
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Status(httpCode).Send(body)
}

func ResponseOK(c *fiber.Ctx, data interface{}) error {
	return ResponseJSON(c, fiber.StatusOK, "Success", data)
}

func ResponseNotFound(c *fiber.Ctx) error {
	return ResponseJSON(c, fiber.StatusNotFound, "Not Found", nil)
}

func ResponseInternalError(c *fiber.Ctx) error {
	return ResponseJSON(c, fiber.StatusInternalServerError, "Internal Server Error", nil)
}
