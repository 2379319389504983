package gpu

// bandwidthDivisor converts MT/s times bus bits into GiB/s.
const bandwidthDivisor = 1000 * 8

// Record is the capability record of the first GPU on the host.
type Record struct {
	Model  string `json:"model" yaml:"model"`
	CUDA   CUDA   `json:"cuda" yaml:"cuda"`
	Clocks Clocks `json:"clocks" yaml:"clocks"`
	Memory Memory `json:"memory" yaml:"memory"`

	// BusWidth is the memory interface width in bits.
	BusWidth uint64 `json:"-" yaml:"-"`
	// MaxTransferRate is the highest memory transfer rate in MT/s.
	MaxTransferRate uint64 `json:"-" yaml:"-"`
}

// CUDA describes CUDA support.
type CUDA struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Cores   uint64 `json:"cores" yaml:"cores"`
	Version string `json:"version" yaml:"version"`
}

// Clocks are maximum clock speeds in MHz.
type Clocks struct {
	Graphics uint64 `json:"graphics.mhz" yaml:"graphics.mhz"`
	Memory   uint64 `json:"memory.mhz" yaml:"memory.mhz"`
	SM       uint64 `json:"sm.mhz" yaml:"sm.mhz"`
	Video    uint64 `json:"video.mhz" yaml:"video.mhz"`
}

// Memory holds framebuffer size and derived bandwidth.
type Memory struct {
	Bandwidth uint64  `json:"bandwidth.gib" yaml:"bandwidth.gib"`
	Total     float64 `json:"total.gib" yaml:"total.gib"`
}

// Bandwidth returns memory bandwidth in GiB/s for a transfer rate in MT/s
// and a bus width in bits. The result is truncated.
func Bandwidth(maxTransferRate, busWidth uint64) uint64 {
	return maxTransferRate * busWidth / bandwidthDivisor
}
