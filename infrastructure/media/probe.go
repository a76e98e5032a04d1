package media

import (
	"encoding/json"
	"errors"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"video-tube/domain/repository"
)

// Probe reads media metadata with ffprobe.
type Probe struct{}

func NewProbe() repository.IDurationProbe {
	return &Probe{}
}

func (p *Probe) Duration(path string) (float64, error) {
	out, err := ffmpeg.Probe(path)
	if err != nil {
		return 0, err
	}
	var probed struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(out), &probed); err != nil {
		return 0, err
	}
	if probed.Format.Duration == "" {
		return 0, errors.New("media: probe output has no duration")
	}
	return strconv.ParseFloat(probed.Format.Duration, 64)
}
