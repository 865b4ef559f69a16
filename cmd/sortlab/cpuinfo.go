// SPDX-License-Identifier: MIT

package main

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// cpuFeatures names the SIMD features of the host relevant when comparing
// timings across machines.
func cpuFeatures() []string {
	type feature struct {
		name string
		ok   bool
	}
	var fs []feature
	switch runtime.GOARCH {
	case "amd64", "386":
		fs = []feature{
			{"sse4.2", cpu.X86.HasSSE42},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"fma", cpu.X86.HasFMA},
			{"avx512f", cpu.X86.HasAVX512F},
		}
	case "arm64":
		fs = []feature{
			{"asimd", cpu.ARM64.HasASIMD},
			{"sve", cpu.ARM64.HasSVE},
		}
	}

	var names []string
	for _, f := range fs {
		if f.ok {
			names = append(names, f.name)
		}
	}
	if len(names) == 0 {
		return []string{"none"}
	}

	return names
}
