package ptp

// MaxSamples is the kernel's PTP_MAX_SAMPLES.
const MaxSamples = 25

// Magic is the ioctl type byte of PTP clock requests.
const Magic = '='

const (
	ClockGetCaps      = 0x80503d01
	ExttsRequest      = 0x40103d02
	PeroutRequest     = 0x40383d03
	EnablePPS         = 0x40043d04
	SysOffset         = 0x43403d05
	PinGetFunc        = 0xc0603d06
	PinSetFunc        = 0x40603d07
	SysOffsetPrecise  = 0xc0403d08
	SysOffsetExtended = 0xc4c03d09

	ClockGetCaps2      = 0x80503d0a
	ExttsRequest2      = 0x40103d0b
	PeroutRequest2     = 0x40383d0c
	EnablePPS2         = 0x40043d0d
	SysOffset2         = 0x43403d0e
	PinGetFunc2        = 0xc0603d0f
	PinSetFunc2        = 0x40603d10
	SysOffsetPrecise2  = 0xc0403d11
	SysOffsetExtended2 = 0xc4c03d12
)

// ioctl direction bits.
const (
	dirWrite = 1
	dirRead  = 2
)

// ioc encodes an ioctl number the way the kernel's _IOC macro does.
func ioc(dir, nr, size uint32) uint32 {
	return dir<<30 | size<<16 | uint32(Magic)<<8 | nr
}
