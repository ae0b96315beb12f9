package speech

import (
	"fmt"
	"strings"
)

// Rate — уровень скорости речи. Значение совпадает с токеном атрибута prosody rate.
type Rate int

const (
	RateXSlow Rate = iota
	RateSlow
	RateMedium
	RateFast
	RateXFast
)

// DefaultOutput путь к файлу результата, если не задан флагом или окружением.
const DefaultOutput = "output.mp3"

var rateTokens = [...]string{
	RateXSlow:  "x-slow",
	RateSlow:   "slow",
	RateMedium: "medium",
	RateFast:   "fast",
	RateXFast:  "x-fast",
}

func (r Rate) String() string {
	if r < RateXSlow || r > RateXFast {
		return fmt.Sprintf("Rate(%d)", int(r))
	}
	return rateTokens[r]
}

// Rates возвращает все уровни скорости в порядке возрастания.
func Rates() []Rate {
	return []Rate{RateXSlow, RateSlow, RateMedium, RateFast, RateXFast}
}

// RateTokens — допустимые значения флага --rate.
func RateTokens() []string {
	out := make([]string, 0, len(rateTokens))
	for _, r := range Rates() {
		out = append(out, r.String())
	}
	return out
}

// ParseRate разбирает токен скорости (регистр не важен).
func ParseRate(s string) (Rate, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, r := range Rates() {
		if r.String() == v {
			return r, nil
		}
	}
	return RateMedium, fmt.Errorf("%w: unknown rate %q (expected one of %s)", ErrInvalidArgument, s, strings.Join(RateTokens(), "|"))
}

// Request — один запрос на синтез. Создаётся разбором аргументов и используется один раз.
type Request struct {
	Text     string
	Voice    string
	Rate     Rate
	Output   string
	Region   string // пусто — регион определяется цепочкой AWS SDK
	Provider string
}

// BuildSSML оборачивает текст в разметку с атрибутом скорости.
// Текст вставляется как есть: спецсимволы разметки не экранируются.
func BuildSSML(text string, rate Rate) string {
	return "<speak><prosody rate='" + rate.String() + "'>" + text + "</prosody></speak>"
}
