package main

import (
	"github.com/NVIDIA/gpu-probe/pkg/cli"
)

func main() {
	cli.Execute()
}
