package enrichment

import (
	ua "github.com/mileusna/useragent"
)

// Device types reported by DeviceDetector.
const (
	DeviceDesktop = "Desktop"
	DeviceMobile  = "Mobile"
	DeviceTablet  = "Tablet"
	DeviceBot     = "Bot"
	DeviceUnknown = "Unknown"
)

// DeviceDetector detects device type from User-Agent strings.
type DeviceDetector struct{}

func NewDeviceDetector() *DeviceDetector {
	return &DeviceDetector{}
}

// DetectDevice returns one of the Device* constants.
func (d *DeviceDetector) DetectDevice(uaString string) string {
	if uaString == "" {
		return DeviceUnknown
	}

	parsed := ua.Parse(uaString)

	// Crawlers often claim a desktop browser too.
	if parsed.Bot {
		return DeviceBot
	}
	if parsed.Tablet {
		return DeviceTablet
	}
	if parsed.Mobile {
		return DeviceMobile
	}
	if parsed.Desktop {
		return DeviceDesktop
	}
	return DeviceUnknown
}
