package helper

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParseUUIDParam mengambil path param dan parse sebagai UUID.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	if raw == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(raw)
}

// ParseDateYYYYMMDD parse "2006-01-02" dan normalisasi ke midnight UTC
// (kolom attendance bertipe date; jam diabaikan).
func ParseDateYYYYMMDD(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// DecodedParam mengambil path param yang mungkin ter-URL-encode (mis. nama ujian).
func DecodedParam(c *fiber.Ctx, name string) (string, error) {
	raw := strings.TrimSpace(c.Params(name))
	if raw == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(decoded), nil
}

// NormalizeDate memotong komponen jam dari timestamp apa pun.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
