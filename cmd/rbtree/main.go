// Command rbtree builds a tree from the command line and prints it.
//
//	rbtree --insert 10,20,30 --delete 20 --verify
package main

import (
	"flag"
	"fmt"

	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/golang/glog"
	"github.com/spf13/pflag"
)

var (
	insert = pflag.IntSliceP("insert", "i", nil, "Elements to insert, in order")
	del    = pflag.IntSliceP("delete", "d", nil, "Elements to delete after the insertions, in order")
	plain  = pflag.Bool("plain", false, "Use an unbalanced ordered tree instead of a red-black tree")
	verify = pflag.Bool("verify", false, "Check the tree's invariants after every step")
	digest = pflag.Bool("digest", false, "Print the tree's digest")
)

type tree interface {
	Trees.Tree[int]
	Digest() uint64
}

func main() {
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()
	defer glog.Flush()

	var t tree
	var rb *Trees.RedBlackTree[int, uint32]
	if *plain {
		t = Trees.NewOrdered[int](uint32(len(*insert)))
	} else {
		rb = Trees.NewRedBlack[int](uint32(len(*insert)))
		t = rb
	}

	check := func(step string) {
		if !*verify {
			return
		}
		if err := t.Verify(); err != nil {
			glog.Exitf("after %s: %v", step, err)
		}
	}
	for _, v := range *insert {
		if err := t.Add(v); err != nil {
			glog.Exitf("insert %d: %v", v, err)
		}
		glog.V(1).Infof("inserted %d, size %d", v, t.Len())
		check(fmt.Sprint("inserting ", v))
	}
	for _, v := range *del {
		if !t.Delete(v) {
			glog.Warningf("delete %d: not found", v)
			continue
		}
		glog.V(1).Infof("deleted %d, size %d", v, t.Len())
		check(fmt.Sprint("deleting ", v))
	}

	fmt.Print(t)
	fmt.Printf("size: %d\nheight: %d\n", t.Len(), t.Height())
	if rb != nil {
		fmt.Printf("black height: %d\n", rb.BlackHeight())
	}
	if *digest {
		fmt.Printf("digest: %016x\n", t.Digest())
	}
}
