//go:build tinygo && cortexm

package delay

import (
	"device/arm"
	"machine"
)

// MaxSysTickTicks is the largest reload value of the 24-bit SysTick counter.
const MaxSysTickTicks = 0xFFFFFF

// SysTick drives the Cortex-M SysTick counter clocked from the core clock.
// The TinyGo RP2 runtime keeps time with the TIMER peripheral, so SysTick is
// free for this package to own.
type SysTick struct{}

func (SysTick) Start(ticks uint32) {
	arm.SYST.SYST_RVR.Set(ticks)
	arm.SYST.SYST_CVR.Set(0)
	arm.SYST.SYST_CSR.Set(arm.SYST_CSR_CLKSOURCE_Msk | arm.SYST_CSR_ENABLE_Msk)
}

func (SysTick) Expired() bool {
	return arm.SYST.SYST_CSR.HasBits(arm.SYST_CSR_COUNTFLAG_Msk)
}

func (SysTick) Stop() {
	arm.SYST.SYST_CSR.Set(arm.SYST_CSR_CLKSOURCE_Msk)
}

// NewSysTick returns a Provider calibrated from the current CPU frequency.
func NewSysTick() *Provider {
	return New(SysTick{}, machine.CPUFrequency()/1_000_000, MaxSysTickTicks)
}
