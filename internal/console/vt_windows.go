//go:build windows

package console

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

const enableVirtualTerminalProcessing = 0x0004

var (
	modkernel32          = windows.NewLazySystemDLL("kernel32.dll")
	procSetConsoleTitleW = modkernel32.NewProc("SetConsoleTitleW")

	modntdll          = windows.NewLazySystemDLL("ntdll.dll")
	procRtlGetVersion = modntdll.NewProc("RtlGetVersion")
)

// EnableColors turns on VT processing for stdout and reports whether ANSI
// escape codes can be used. Consoles older than Windows 10 do not support
// VT mode, so colors stay off there.
func EnableColors(f *os.File) bool {
	if !isWindows10OrGreater() {
		return false
	}
	h := windows.Handle(f.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}
	return windows.SetConsoleMode(h, mode|enableVirtualTerminalProcessing) == nil
}

// IsTerminal reports whether f is attached to a console.
func IsTerminal(f *os.File) bool {
	var mode uint32
	return windows.GetConsoleMode(windows.Handle(f.Fd()), &mode) == nil
}

// SetTitle sets the console window title. Failures are ignored; the title
// is cosmetic.
func SetTitle(title string) {
	p, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return
	}
	_, _, _ = procSetConsoleTitleW.Call(uintptr(unsafe.Pointer(p)))
}

// osVersionInfoExW mirrors OSVERSIONINFOEXW for RtlGetVersion, which
// reports the real OS version regardless of manifest compatibility shims.
type osVersionInfoExW struct {
	DwOSVersionInfoSize uint32
	DwMajorVersion      uint32
	DwMinorVersion      uint32
	DwBuildNumber       uint32
	DwPlatformId        uint32
	SzCSDVersion        [128]uint16
	WServicePackMajor   uint16
	WServicePackMinor   uint16
	WSuiteMask          uint16
	WProductType        byte
	WReserved           byte
}

func isWindows10OrGreater() bool {
	var info osVersionInfoExW
	info.DwOSVersionInfoSize = uint32(unsafe.Sizeof(info))
	r1, _, _ := procRtlGetVersion.Call(uintptr(unsafe.Pointer(&info)))
	if r1 != 0 {
		return false
	}
	return info.DwMajorVersion >= 10
}
