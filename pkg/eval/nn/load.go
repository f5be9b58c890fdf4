package eval

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var (
	ErrShortWeights = errors.New("weights file too short")
	ErrNotLoaded    = errors.New("weights not loaded")
)

// LoadWeights reads whitespace separated numbers in the order PSQT,
// hidden1 weights and biases, hidden2 weights and biases, output weights
// and bias. Layer weights are stored input major.
func LoadWeights(r io.Reader) (*Weights, error) {
	var scanner = bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	var w = &Weights{}
	var n = 0
	var read = func(dst []float32) error {
		for i := range dst {
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return err
				}
				return fmt.Errorf("%w: %v values", ErrShortWeights, n)
			}
			var v, err = strconv.ParseFloat(scanner.Text(), 32)
			if err != nil {
				return fmt.Errorf("value %v: %w", n, err)
			}
			dst[i] = float32(v)
			n++
		}
		return nil
	}
	for _, dst := range [][]float32{
		w.PSQT[:],
		w.Hidden1Weights[:],
		w.Hidden1Biases[:],
		w.Hidden2Weights[:],
		w.Hidden2Biases[:],
		w.OutputWeights[:],
	} {
		if err := read(dst); err != nil {
			return nil, err
		}
	}
	var bias [1]float32
	if err := read(bias[:]); err != nil {
		return nil, err
	}
	w.OutputBias = bias[0]
	return w, nil
}

// SaveWeights writes w in the format read by LoadWeights.
func SaveWeights(wr io.Writer, w *Weights) error {
	var bw = bufio.NewWriter(wr)
	for _, src := range [][]float32{
		w.PSQT[:],
		w.Hidden1Weights[:],
		w.Hidden1Biases[:],
		w.Hidden2Weights[:],
		w.Hidden2Biases[:],
		w.OutputWeights[:],
		{w.OutputBias},
	} {
		for _, v := range src {
			bw.WriteString(strconv.FormatFloat(float64(v), 'f', 8, 32))
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
