// Command measure times deletions followed by lookups on every tree variant,
// over a growing share of deleted values, and reports the average time per
// run with its standard deviation and the depth left after the deletions.
package main

import (
	"flag"
	"math"
	"math/rand"
	"testing"

	"github.com/g-m-twostay/datality/Trees"
	"github.com/sirupsen/logrus"
)

var (
	addN  = flag.Int("n", 100000, "values inserted before each run")
	steps = flag.Int("steps", 10, "number of shares of deleted values, from 1/steps to (steps-1)/steps")
	seed  = flag.Int64("seed", 0, "seed of the values and of the Treap priorities")
	debug = flag.Bool("debug", false, "log the restructuring of the trees")
)

var log = logrus.New()

// tree is what measure needs from a Trees.Tree, whatever its Meta.
type tree interface {
	Insert(int) bool
	Delete(int) error
	Has(int) bool
}

func depth[M any](n *Trees.Node[int, M]) int {
	if n == nil {
		return 0
	}
	return max(depth(n.Left()), depth(n.Right())) + 1
}

type variant struct {
	name  string
	mk    func(rg *rand.Rand) tree
	depth func(tree) int
}

func of[M any](name string, mk func(rg *rand.Rand) Trees.Tree[int, M]) variant {
	return variant{
		name: name,
		mk:   func(rg *rand.Rand) tree { return mk(rg) },
		depth: func(t tree) int {
			return depth(t.(Trees.Tree[int, M]).Root())
		},
	}
}

var variants = []variant{
	of("BST", func(*rand.Rand) Trees.Tree[int, struct{}] { return Trees.NewBST[int]() }),
	of("AVL", func(*rand.Rand) Trees.Tree[int, int] { return Trees.NewAVL[int]() }),
	of("RBTree", func(*rand.Rand) Trees.Tree[int, Trees.Color] { return Trees.NewRBTree[int]() }),
	of("Splay", func(*rand.Rand) Trees.Tree[int, struct{}] { return Trees.NewSplay[int]() }),
	of("Treap", func(rg *rand.Rand) Trees.Tree[int, float64] { return Trees.NewTreap[int](rg) }),
	of("SBTree", func(*rand.Rand) Trees.Tree[int, uint] { return Trees.NewSBTree[int]() }),
}

// run builds a tree of addN random values, then times deleting the first rmvN
// of them and looking up all of them.
func run(v variant, rmvN int) (testing.BenchmarkResult, int) {
	rg := rand.New(rand.NewSource(*seed))
	all := make([]int, *addN)
	var d int
	br := testing.Benchmark(func(b *testing.B) {
		for range b.N {
			b.StopTimer()
			t := v.mk(rg)
			for i := range all {
				all[i] = rg.Int()
				t.Insert(all[i])
			}
			b.StartTimer()
			for _, x := range all[:rmvN] {
				t.Delete(x)
			}
			for _, x := range all {
				t.Has(x)
			}
			b.StopTimer()
			d = v.depth(t)
		}
	})
	return br, d
}

func main() {
	testing.Init()
	flag.Parse()
	if *debug {
		Trees.Log.SetLevel(logrus.DebugLevel)
	}
	if *addN <= 0 || *steps < 2 {
		log.WithFields(logrus.Fields{"n": *addN, "steps": *steps}).Fatal("n must be positive and steps at least 2")
	}
	for _, v := range variants {
		var cs []float64
		for i := 1; i < *steps; i++ {
			rmvN := *addN / *steps * i
			br, d := run(v, rmvN)
			cs = append(cs, float64(br.NsPerOp())/1e6)
			log.WithFields(logrus.Fields{"tree": v.name, "deleted": rmvN, "ms/op": cs[len(cs)-1], "depth": d}).Info("step")
		}
		var sum float64
		for _, c := range cs {
			sum += c
		}
		avg := sum / float64(len(cs))
		sum = 0
		for _, c := range cs {
			sum += (c - avg) * (c - avg)
		}
		log.WithFields(logrus.Fields{
			"tree":   v.name,
			"avg":    avg,
			"stddev": math.Sqrt(sum / float64(len(cs))),
		}).Info("ms/op")
	}
}
