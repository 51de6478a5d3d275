package utils

import (
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const versionAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewSnapshotVersion gera a versão de um snapshot: instante da carga seguido de um sufixo aleatório
func NewSnapshotVersion(fetchedAt time.Time) string {
	stamp := fetchedAt.UTC().Format("20060102T150405")

	suffix, err := gonanoid.Generate(versionAlphabet, 6)
	if err != nil {
		return stamp
	}
	return stamp + "-" + suffix
}
