package pairing

import (
	"context"
	"math/rand"
	"strconv"
	"testing"
)

func BenchmarkResolveRound(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	r := fullRound()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ResolveRound(rng, r)
	}
}

func BenchmarkOptimize(b *testing.B) {
	for _, parallelism := range []int{1, 4} {
		b.Run("parallel="+strconv.Itoa(parallelism), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				o := &Optimizer{Matrix: sampleMatrix, Rand: rand.New(rand.NewSource(int64(i))), Parallelism: parallelism}
				if _, err := o.Optimize(context.Background(), ownRoster, oppRoster, DefaultTrialBudget); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPickAttackers(b *testing.B) {
	ev := &Evaluator{Matrix: sampleMatrix, Rand: rand.New(rand.NewSource(1))}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ev.PickAttackers(ownRoster, oppRoster, "Laurence", "Jack"); err != nil {
			b.Fatal(err)
		}
	}
}
