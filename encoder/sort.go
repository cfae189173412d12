package encoder

import (
	"cmp"
	"strings"

	"golang.org/x/exp/slices"

	"omibyte.io/svdenc/config"
	"omibyte.io/svdenc/svd"
)

// SortRegisterClusters returns the entries in output order. With a partition
// the registers and the clusters are sorted separately and then concatenated
// in the partition's order; otherwise the whole list is sorted with registers
// and clusters interleaved. Sorting is stable and the input is not modified.
func SortRegisterClusters(items []svd.RegisterCluster, partition config.Partition, sorting config.Sorting) []svd.RegisterCluster {
	switch partition {
	case config.RegistersFirst, config.ClustersFirst:
		var registers, clusters []svd.RegisterCluster
		for _, rc := range items {
			if _, ok := rc.(*svd.Register); ok {
				registers = append(registers, rc)
			} else {
				clusters = append(clusters, rc)
			}
		}

		sortRegisterClusters(registers, sorting)
		sortRegisterClusters(clusters, sorting)

		if partition == config.RegistersFirst {
			return append(registers, clusters...)
		}
		return append(clusters, registers...)
	}

	sorted := slices.Clone(items)
	sortRegisterClusters(sorted, sorting)
	return sorted
}

func sortRegisterClusters(items []svd.RegisterCluster, sorting config.Sorting) {
	switch sorting {
	case config.SortOffset:
		slices.SortStableFunc(items, func(a, b svd.RegisterCluster) int {
			return cmp.Compare(a.GetAddressOffset(), b.GetAddressOffset())
		})
	case config.SortOffsetReversed:
		slices.SortStableFunc(items, func(a, b svd.RegisterCluster) int {
			return cmp.Compare(b.GetAddressOffset(), a.GetAddressOffset())
		})
	case config.SortName:
		slices.SortStableFunc(items, func(a, b svd.RegisterCluster) int {
			return strings.Compare(a.GetName(), b.GetName())
		})
	}
}
