package eval

import (
	"math"

	. "github.com/batuchess/batu/pkg/common"
	material "github.com/batuchess/batu/pkg/eval/material"
)

const (
	InputSize   = 64 * 12
	Hidden1Size = 256
	Hidden2Size = 32
	ScaleFactor = 600
)

// Weights of a 768-256-32-1 network with a linear piece-square skip path.
// Input i is piece*64+square.
type Weights struct {
	PSQT           [InputSize]float32
	Hidden1Weights [InputSize * Hidden1Size]float32
	Hidden1Biases  [Hidden1Size]float32
	Hidden2Weights [Hidden1Size * Hidden2Size]float32
	Hidden2Biases  [Hidden2Size]float32
	OutputWeights  [Hidden2Size]float32
	OutputBias     float32
}

type EvaluationService struct {
	*Weights
	fallback *material.EvaluationService
	input    []int
	hidden1  [Hidden1Size]float32
	hidden2  [Hidden2Size]float32
}

// NewEvaluationService counts material when weights is nil.
func NewEvaluationService(weights *Weights) *EvaluationService {
	return &EvaluationService{
		Weights:  weights,
		fallback: material.NewEvaluationService(),
		input:    make([]int, 0, 32),
	}
}

func (e *EvaluationService) Loaded() bool {
	return e.Weights != nil
}

func (e *EvaluationService) Evaluate(b *Board) int {
	if e.Weights == nil {
		return e.fallback.Evaluate(b)
	}
	var output = int(math.Tanh(float64(e.feed(b))) * ScaleFactor)
	if b.Side != White {
		output = -output
	}
	return output
}

func (e *EvaluationService) feed(b *Board) float32 {
	e.input = e.input[:0]
	for piece := WhitePawn; piece <= BlackKing; piece++ {
		for bb := b.Pieces[piece]; bb != 0; bb &= bb - 1 {
			e.input = append(e.input, piece*64+FirstOne(bb))
		}
	}

	var psqt float32
	for _, i := range e.input {
		psqt += e.PSQT[i]
	}

	for j := range e.hidden1 {
		e.hidden1[j] = e.Hidden1Biases[j]
	}
	for _, i := range e.input {
		var row = e.Hidden1Weights[i*Hidden1Size : (i+1)*Hidden1Size]
		for j := range e.hidden1 {
			e.hidden1[j] += row[j]
		}
	}

	for j := range e.hidden2 {
		var sum = e.Hidden2Biases[j]
		for i, x := range e.hidden1 {
			if x > 0 {
				sum += x * e.Hidden2Weights[i*Hidden2Size+j]
			}
		}
		e.hidden2[j] = relu(sum)
	}

	var positional = e.OutputBias
	for i, x := range e.hidden2 {
		positional += x * e.OutputWeights[i]
	}
	return psqt + positional
}

func relu(x float32) float32 {
	if x > 0 {
		return x
	}
	return 0
}
