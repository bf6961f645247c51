package main

import (
	"log"

	"golang.org/x/sys/cpu"
)

// logCPUFeatures reports hardware crypto-acceleration features at startup.
// PRINCE's S-box and M' layers are bit-sliced nibble arithmetic, not AES,
// so AES-NI buys this engine nothing directly; the check is purely
// informational.
func logCPUFeatures(logger *log.Logger) {
	logger.Printf("cpu: AES=%v AVX2=%v AVX512F=%v", cpu.X86.HasAES, cpu.X86.HasAVX2, cpu.X86.HasAVX512F)
}
