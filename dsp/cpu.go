package dsp

import "github.com/klauspost/cpuid/v2"

// hasVectorUnit reports whether the CPU has a 128-bit integer vector unit
// (SSE2 on x86, ASIMD/NEON on arm64). The bulk kernels are portable Go, but
// they only pay off where the compiler can keep the wide word arithmetic in
// vector-friendly form, so selection mirrors libwebp's SSE2/NEON gating.
var hasVectorUnit = cpuid.CPU.Has(cpuid.SSE2) || cpuid.CPU.Has(cpuid.ASIMD)
