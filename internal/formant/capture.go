package formant

import (
	"encoding/hex"
	"runtime"
	"strings"

	"github.com/gen2brain/malgo"

	"github.com/tphakala/vowelnet/internal/errors"
)

// backendForPlatform returns the capture backend for the current OS.
func backendForPlatform() (malgo.Backend, error) {
	switch runtime.GOOS {
	case "linux":
		return malgo.BackendAlsa, nil
	case "windows":
		return malgo.BackendWasapi, nil
	case "darwin":
		return malgo.BackendCoreaudio, nil
	default:
		return malgo.BackendNull, errors.Newf("unsupported operating system %s", runtime.GOOS).
			Component("formant").
			Category(errors.CategoryAudioSource).
			Context("os", runtime.GOOS).
			Build()
	}
}

// CaptureDevices lists the system's audio capture devices. A live detector
// would open one of these; the list is informational for trace replay.
func CaptureDevices() ([]Device, error) {
	backend, err := backendForPlatform()
	if err != nil {
		return nil, err
	}

	ctx, err := malgo.InitContext([]malgo.Backend{backend}, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, errors.New(err).
			Component("formant").
			Category(errors.CategoryAudioSource).
			Context("operation", "init_context").
			Context("backend", runtime.GOOS).
			Build()
	}
	defer func() {
		_ = ctx.Uninit()
		ctx.Free()
	}()

	infos, err := ctx.Devices(malgo.Capture)
	if err != nil {
		return nil, errors.New(err).
			Component("formant").
			Category(errors.CategoryAudioSource).
			Context("operation", "enumerate_devices").
			Build()
	}

	devices := make([]Device, 0, len(infos))
	for i := range infos {
		// skip the null sink
		if strings.Contains(infos[i].Name(), "Discard all samples") {
			continue
		}

		id := infos[i].ID.String()
		if decoded, err := hexToASCII(id); err == nil {
			id = strings.TrimRight(decoded, "\x00")
		}

		devices = append(devices, Device{
			Index:   len(devices),
			Name:    infos[i].Name(),
			ID:      id,
			Default: infos[i].IsDefault == 1,
		})
	}
	return devices, nil
}

func hexToASCII(hexStr string) (string, error) {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
