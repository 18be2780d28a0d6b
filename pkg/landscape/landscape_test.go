package landscape

import (
	"errors"
	"testing"

	"github.com/kant/landscapemetrics/pkg/landscape/cooc"
	"github.com/kant/landscapemetrics/pkg/landscape/internalerr"
)

func TestCooccurrenceVectorUnordered(t *testing.T) {
	vec, err := CooccurrenceVector(
		[][]int{{1, 2, 1}},
		[][]int{{0, 1}},
		false, 1,
	)
	if err != nil {
		t.Fatalf("CooccurrenceVector failed: %v", err)
	}

	if len(vec) != 3 {
		t.Fatalf("Expected triangular vector of length 3, got %d", len(vec))
	}
	if got := vec[cooc.TriangularIndex(1, 2, 2)]; got != 2 {
		t.Errorf("Count for {1,2} should be 2, got %v", got)
	}
}

func TestCooccurrenceVectorOrdered(t *testing.T) {
	vec, err := CooccurrenceVector(
		[][]int{{1, 2, 1}},
		[][]int{{0, 1}},
		true, 2,
	)
	if err != nil {
		t.Fatalf("CooccurrenceVector failed: %v", err)
	}

	if len(vec) != 4 {
		t.Fatalf("Expected ordered vector of length 4, got %d", len(vec))
	}
	if vec[cooc.OrderedIndex(1, 2, 2)] != 1 || vec[cooc.OrderedIndex(2, 1, 2)] != 1 {
		t.Errorf("Expected (1,2)=1 and (2,1)=1, got %v", vec)
	}
}

func TestCooccurrenceVectorBadDirections(t *testing.T) {
	_, err := CooccurrenceVector([][]int{{1}}, [][]int{{0, 1, 2}}, true, 1)
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for non-K×2 directions, got %v", err)
	}
}

func TestCooccurrenceVectorNegativeToken(t *testing.T) {
	_, err := CooccurrenceVector([][]int{{1, -1}}, [][]int{{0, 1}}, true, 1)
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for negative token, got %v", err)
	}
}
