// SPDX-License-Identifier: EPL-2.0

// Package config loads runtime settings from environment variables.
package config

import (
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ik5/audwave/anim"
)

// Config holds all runtime configuration, loaded from environment variables.
type Config struct {
	// Surface
	Width  int
	Height int
	FPS    int

	// Visualizer behavior
	SinkDelay time.Duration // time the old profile sinks before a new one rises
	Accent    anim.RGB      // initial accent color
	Passive   color.NRGBA   // base layer color, straight alpha

	// Fetching
	FetchTimeout  time.Duration // per attempt
	FetchRetries  int
	FetchBackoff  time.Duration // doubled after every failed attempt
	MaxFetchBytes int64

	// Decoding
	AnalysisRate int  // resample before reduction, 0 keeps the source rate
	MixDown      bool // average all channels instead of taking the first
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	return Config{
		Width:  envInt("AUDWAVE_WIDTH", 800),
		Height: envInt("AUDWAVE_HEIGHT", 120),
		FPS:    envInt("AUDWAVE_FPS", 60),

		SinkDelay: time.Duration(envInt("AUDWAVE_SINK_DELAY_MS", 250)) * time.Millisecond,
		Accent:    envRGB("AUDWAVE_ACCENT", anim.RGB{R: 0x1d, G: 0xb9, B: 0x54}),
		Passive:   envNRGBA("AUDWAVE_PASSIVE", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x4d}),

		FetchTimeout:  time.Duration(envInt("AUDWAVE_FETCH_TIMEOUT_MS", 15000)) * time.Millisecond,
		FetchRetries:  envInt("AUDWAVE_FETCH_RETRIES", 3),
		FetchBackoff:  time.Duration(envInt("AUDWAVE_FETCH_BACKOFF_MS", 500)) * time.Millisecond,
		MaxFetchBytes: int64(envInt("AUDWAVE_MAX_FETCH_BYTES", 64<<20)),

		AnalysisRate: envInt("AUDWAVE_ANALYSIS_RATE", 0),
		MixDown:      envBool("AUDWAVE_MIXDOWN", false),
	}
}

// FrameInterval is the tick period for FPS; non-positive FPS means 60.
func (c Config) FrameInterval() time.Duration {
	fps := c.FPS
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envRGB(key string, fallback anim.RGB) anim.RGB {
	if c, err := anim.ParseHex(envStr(key, "")); err == nil {
		return c
	}
	return fallback
}

// envNRGBA accepts the anim.ParseHex forms plus "#rrggbbaa".
func envNRGBA(key string, fallback color.NRGBA) color.NRGBA {
	v := strings.TrimPrefix(strings.TrimSpace(os.Getenv(key)), "#")
	if v == "" {
		return fallback
	}

	alpha := uint8(0xff)
	if len(v) == 8 {
		a, err := strconv.ParseUint(v[6:], 16, 8)
		if err != nil {
			return fallback
		}
		alpha = uint8(a)
		v = v[:6]
	}

	c, err := anim.ParseHex(v)
	if err != nil {
		return fallback
	}
	return c.NRGBA(alpha)
}
