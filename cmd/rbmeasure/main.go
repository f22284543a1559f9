// Command rbmeasure times deletions followed by lookups on a red-black tree,
// sweeping the share of elements removed before the lookups.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/golang/glog"
	"github.com/spf13/pflag"
)

var (
	addN  = pflag.Uint32("n", 100000, "Elements inserted before each run")
	steps = pflag.Uint32("steps", 20, "Number of removal ratios to sweep")
	seed  = pflag.Int64("seed", 0, "Seed of the element generator")
)

var (
	bRmvN uint32
	bQryN uint32
	_R    rand.Rand
)

func create(b *testing.B, all []int) (*Trees.RedBlackTree[int, uint32], []int) {
	b.Helper()
	tree := Trees.NewRedBlack[int](*addN)
	for range *addN {
		a := _R.Int()
		if err := tree.Add(a); err != nil {
			glog.Exitf("insert: %v", err)
		}
		all = append(all, a)
	}
	return tree, all
}

var __r1 bool

func BenchmarkDelQry(b *testing.B) {
	all := make([]int, 0, *addN)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		var tree *Trees.RedBlackTree[int, uint32]
		tree, all = create(b, all[:0])
		m := slices.Max(all)
		b.StartTimer()
		for _, v := range all[:bRmvN] {
			tree.Delete(v)
		}
		for _, v := range all[bRmvN:] {
			__r1 = tree.Contains(v)
		}
		for range bQryN {
			__r1 = tree.Contains(_R.Intn(m))
		}
	}
}

func main() {
	testing.Init()
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()
	defer glog.Flush()
	if *steps == 0 || *addN < *steps {
		glog.Exitf("need 0 < steps <= n, got steps=%d n=%d", *steps, *addN)
	}
	_R = *rand.New(rand.NewSource(*seed))

	var cs []float64
	var N int
	for i := uint32(1); i <= *steps; i++ {
		bRmvN = *addN / *steps * i
		bQryN = bRmvN
		br := testing.Benchmark(BenchmarkDelQry)
		ms := float64(br.T.Microseconds()) / 1000
		cs = append(cs, ms/float64(br.N))
		N += br.N
		glog.V(1).Infof("step %d: removed %d, %d runs, %fms/op", i, bRmvN, br.N, ms/float64(br.N))
	}
	var sum float64
	for _, v := range cs {
		sum += v
	}
	avg := sum / float64(len(cs))
	fmt.Printf("runs: %d\n", N)
	fmt.Printf("average: %fms/op\n", avg)
	sum = 0
	for _, v := range cs {
		a := v - avg
		sum += a * a
	}
	fmt.Printf("stddev: %fms/op\n", math.Sqrt(sum/float64(len(cs))))
}
