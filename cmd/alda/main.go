// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command alda exercises the algorithm packages from the command
// line.
package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"

	"github.com/styvane/alda/container/heap"
	"github.com/styvane/alda/lcs"
	"github.com/styvane/alda/merge"
	"github.com/styvane/alda/search"
)

var cmdSet *subcmd.CommandSet

type sortFlags struct {
	Descending bool `subcmd:"descending,false,sort in descending order"`
}

type searchFlags struct {
	Key int64 `subcmd:"key,0,value to search for"`
}

type topNFlags struct {
	N int `subcmd:"n,3,number of entries to display"`
}

func init() {
	sortFlagSet := subcmd.NewFlagSet()
	sortFlagSet.MustRegisterFlagStruct(&sortFlags{}, nil, nil)
	mergeFlagSet := subcmd.NewFlagSet()
	searchFlagSet := subcmd.NewFlagSet()
	searchFlagSet.MustRegisterFlagStruct(&searchFlags{}, nil, nil)
	lcsFlagSet := subcmd.NewFlagSet()
	topNFlagSet := subcmd.NewFlagSet()
	topNFlagSet.MustRegisterFlagStruct(&topNFlags{}, nil, nil)

	sortCmd := subcmd.NewCommand("sort", sortFlagSet, heapsort)
	sortCmd.Document("heap sort the integer arguments", "<int>+")

	mergeCmd := subcmd.NewCommand("merge", mergeFlagSet, mergeRuns)
	mergeCmd.Document("merge sorted runs of comma separated integers", "<int>[,<int>]* ...")

	searchCmd := subcmd.NewCommand("search", searchFlagSet, binsearch)
	searchCmd.Document("binary search the sorted integer arguments for --key", "<int>+")

	lcsCmd := subcmd.NewCommand("lcs", lcsFlagSet, subsequence, subcmd.ExactlyNumArguments(2))
	lcsCmd.Document("print the longest common subsequence of two strings", "<a> <b>")

	topNCmd := subcmd.NewCommand("topn", topNFlagSet, topN)
	topNCmd.Document("print the largest entries of a set of key=count arguments", "<key>=<count> ...")

	cmdSet = subcmd.NewCommandSet(sortCmd, mergeCmd, searchCmd, lcsCmd, topNCmd)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

func parseInts(args []string) ([]int64, error) {
	vals := make([]int64, len(args))
	for i, a := range args {
		v, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %v", a)
		}
		vals[i] = v
	}
	return vals, nil
}

func heapsort(_ context.Context, values interface{}, args []string) error {
	fv := values.(*sortFlags)
	keys, err := parseInts(args)
	if err != nil {
		return err
	}
	var h *heap.T[int64, struct{}]
	if fv.Descending {
		h = heap.NewMin[int64, struct{}](heap.WithKeys[int64, struct{}](keys))
	} else {
		h = heap.NewMax[int64, struct{}](heap.WithKeys[int64, struct{}](keys))
	}
	fmt.Println(h.SortedKeys())
	return nil
}

func mergeRuns(_ context.Context, _ interface{}, args []string) error {
	runs := make([][]int64, len(args))
	for i, arg := range args {
		run, err := parseInts(strings.Split(arg, ","))
		if err != nil {
			return err
		}
		for j := 1; j < len(run); j++ {
			if run[j-1] > run[j] {
				return fmt.Errorf("run %v is not sorted", arg)
			}
		}
		runs[i] = run
	}
	fmt.Println(merge.Ascending(runs...))
	return nil
}

func binsearch(_ context.Context, values interface{}, args []string) error {
	fv := values.(*searchFlags)
	keys, err := parseInts(args)
	if err != nil {
		return err
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] > keys[i] {
			return fmt.Errorf("arguments are not sorted")
		}
	}
	i := search.Binary(keys, fv.Key)
	if i < 0 {
		return fmt.Errorf("%v not found", fv.Key)
	}
	fmt.Println(i)
	return nil
}

func subsequence(_ context.Context, _ interface{}, args []string) error {
	dp := lcs.NewDP([]rune(args[0]), []rune(args[1]))
	fmt.Println(string(dp.LCS()))
	return nil
}

func topN(_ context.Context, values interface{}, args []string) error {
	fv := values.(*topNFlags)
	h := heap.NewKeyed(heap.Max)
	for _, arg := range args {
		key, count, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("not a key=count pair: %v", arg)
		}
		v, err := strconv.ParseInt(count, 10, 64)
		if err != nil {
			return fmt.Errorf("not an integer count: %v", arg)
		}
		h.Update(key, v)
	}
	for _, kv := range h.TopN(fv.N) {
		fmt.Printf("%v: %v\n", kv.Key, kv.Value)
	}
	return nil
}
