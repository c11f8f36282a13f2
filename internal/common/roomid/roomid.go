package roomid

import (
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/Yashavanth-L/tambola-next-lvl/internal/common/roomid Generator

// Length of a room identifier
const Length = 6

// Generator produces room identifiers
type Generator interface {
	NewID() string
}

// DefaultGenerator implements the Generator interface using the uuid package

type DefaultGenerator struct{}

func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewID returns a 6-character uppercase room identifier
func (g *DefaultGenerator) NewID() string {
	return strings.ToUpper(uuid.New().String()[:Length])
}
