package utils

import "time"

// ParseDate interpreta uma data no formato AAAA-MM-DD, o mesmo usado
// pelo gateway e pelos checkpoints. Uma string vazia é inválida.
func ParseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
