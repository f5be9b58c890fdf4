package common

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Perft counts the leaf nodes of the legal move tree of the given depth.
func Perft(b *Board, depth int) int64 {
	if depth == 0 {
		return 1
	}
	var ml MoveList
	b.GenerateMoves(&ml)
	var result int64
	for i := 0; i < ml.Count; i++ {
		var backup = *b
		if !b.MakeMove(ml.Moves[i], false) {
			continue
		}
		result += Perft(b, depth-1)
		b.Restore(&backup)
	}
	return result
}

// PerftDivide returns the perft count below every legal root move.
func PerftDivide(b *Board, depth int) map[string]int64 {
	var result = make(map[string]int64)
	if depth <= 0 {
		return result
	}
	for _, m := range b.GenerateLegalMoves() {
		var child = *b
		child.MakeMove(m, false)
		result[m.String()] = Perft(&child, depth-1)
	}
	return result
}

// PerftDivideParallel is PerftDivide with one worker per root move, at most
// threads at a time. It stops early when ctx is cancelled.
func PerftDivideParallel(ctx context.Context, b *Board, depth, threads int) (map[string]int64, error) {
	var result = make(map[string]int64)
	if depth <= 0 {
		return result, nil
	}
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(Max(1, threads))
	for _, m := range b.GenerateLegalMoves() {
		var child = *b
		child.MakeMove(m, false)
		var name = m.String()
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var nodes = Perft(&child, depth-1)
			mu.Lock()
			result[name] = nodes
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
