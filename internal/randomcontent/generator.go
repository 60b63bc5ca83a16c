package randomcontent

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"
)

const (
	// TitleLength is the fixed length of the generated title.
	TitleLength = 8

	fillByte = 'a'
	letters  = "abcdefghijklmnopqrstuvwxyz"
)

// ErrInvalidSize is returned for size specs that do not match <int><KB|MB>.
var ErrInvalidSize = errors.New("invalid size, use KB or MB")

// Document is the shape of generated content.
type Document struct {
	UserID int64  `json:"userId"`
	Title  string `json:"title"`
	Text   string `json:"text"`
}

// ParseSize resolves a size spec such as "2KB" or "1 MB" to a byte count.
// Whitespace between the number and the unit is tolerated.
func ParseSize(spec string) (int, error) {
	spec = strings.TrimSpace(spec)

	var multiplier int
	switch {
	case strings.HasSuffix(spec, "KB"):
		multiplier = 1024
	case strings.HasSuffix(spec, "MB"):
		multiplier = 1024 * 1024
	default:
		return 0, ErrInvalidSize
	}

	num := strings.TrimSpace(spec[:len(spec)-2])
	if num == "" || strings.TrimLeft(num, "0123456789") != "" {
		return 0, ErrInvalidSize
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSize, err)
	}
	if n > math.MaxInt/multiplier {
		return 0, fmt.Errorf("%w: size overflows", ErrInvalidSize)
	}
	return n * multiplier, nil
}

// Generator produces synthetic JSON documents.
// The zero value is not usable; use New or Default.
type Generator struct {
	rnd io.Reader
}

// New returns a Generator reading randomness from r.
func New(r io.Reader) *Generator {
	return &Generator{rnd: r}
}

// Default is backed by crypto/rand.
var Default = New(rand.Reader)

// Generate is a shorthand for Default.Generate.
func Generate(spec string) ([]byte, error) {
	return Default.Generate(spec)
}

// Generate builds a document whose text field is exactly the number of bytes spec resolves to.
func (g *Generator) Generate(spec string) ([]byte, error) {
	size, err := ParseSize(spec)
	if err != nil {
		return nil, err
	}
	return g.GenerateBytes(size)
}

// GenerateBytes builds a document with a text field of exactly size bytes.
func (g *Generator) GenerateBytes(size int) ([]byte, error) {
	if size < 0 {
		return nil, ErrInvalidSize
	}
	userID, err := rand.Int(g.rnd, big.NewInt(math.MaxInt32))
	if err != nil {
		return nil, fmt.Errorf("random user id: %w", err)
	}
	title, err := g.word(TitleLength)
	if err != nil {
		return nil, fmt.Errorf("random title: %w", err)
	}

	return json.Marshal(Document{
		UserID: userID.Int64(),
		Title:  title,
		Text:   strings.Repeat(string(fillByte), size),
	})
}

func (g *Generator) word(n int) (string, error) {
	limit := big.NewInt(int64(len(letters)))
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		idx, err := rand.Int(g.rnd, limit)
		if err != nil {
			return "", err
		}
		sb.WriteByte(letters[idx.Int64()])
	}
	return sb.String(), nil
}
