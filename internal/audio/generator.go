// internal/audio/generator.go
package audio

import (
	"math"
	"math/rand/v2"

	"github.com/gopxl/beep"
)

const sampleRate = beep.SampleRate(44100)

// Формы волны
const (
	waveSine = iota
	waveSquare
	waveNoise
)

// floatBuffer — моно сэмплы с единичной амплитудой
type floatBuffer []float64

func oscillator(waveType int, freq float64, samples int, rng *rand.Rand) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(sampleRate)

	for i := range buf {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1
			} else {
				buf[i] = -1
			}
		case waveNoise:
			buf[i] = rng.Float64()*2 - 1
		}
		phase += phaseInc
		if phase >= 1 {
			phase--
		}
	}
	return buf
}

// applyEnvelope — линейная атака и затухание, на месте
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attack := durationToSamples(attackSec)
	release := durationToSamples(releaseSec)

	releaseStart := total - release
	if releaseStart < attack {
		releaseStart = attack
	}
	for i := range buf {
		vol := 1.0
		if i < attack && attack > 0 {
			vol = float64(i) / float64(attack)
		} else if i >= releaseStart && release > 0 {
			vol = float64(total-i) / float64(release)
		}
		buf[i] *= vol
	}
}

// mixFloatBuffers добавляет b в a с коэффициентом, удлиняя a при необходимости
func mixFloatBuffers(a, b floatBuffer, bScale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

func normalize(buf floatBuffer) floatBuffer {
	peak := 0.0
	for _, s := range buf {
		peak = math.Max(peak, math.Abs(s))
	}
	if peak > 1 {
		for i := range buf {
			buf[i] /= peak
		}
	}
	return buf
}

func durationToSamples(sec float64) int {
	return int(sec * float64(sampleRate))
}

// Шорох выпущенного шара: шум с мягкой атакой
func generateWhoosh(rng *rand.Rand) floatBuffer {
	buf := oscillator(waveNoise, 0, durationToSamples(0.12), rng)
	applyEnvelope(buf, 0.04, 0.07)
	// Грубый ФНЧ, чтобы шум звучал глуше
	for i := 1; i < len(buf); i++ {
		buf[i] = 0.7*buf[i-1] + 0.3*buf[i]
	}
	return buf
}

// Стук кегли: короткий квадрат плюс щелчок шума
func generateClack(rng *rand.Rand) floatBuffer {
	n := durationToSamples(0.06)
	tone := oscillator(waveSquare, 660, n, rng)
	applyEnvelope(tone, 0.002, 0.05)
	click := oscillator(waveNoise, 0, durationToSamples(0.015), rng)
	applyEnvelope(click, 0, 0.015)
	return normalize(mixFloatBuffers(tone, click, 0.6))
}

// Колокольчик при очистке дорожки: A5 с обертоном
func generateBell(rng *rand.Rand) floatBuffer {
	n := durationToSamples(0.6)
	fund := oscillator(waveSine, 880, n, rng)
	applyEnvelope(fund, 0.005, 0.55)
	over := oscillator(waveSine, 1760, n, rng)
	applyEnvelope(over, 0.005, 0.3)
	return normalize(mixFloatBuffers(fund, over, 0.3/0.7))
}

// bufferStreamer проигрывает готовый буфер один раз
type bufferStreamer struct {
	buf    floatBuffer
	volume float64
	pos    int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.buf) {
			return i, true
		}
		v := s.buf[s.pos] * s.volume
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *bufferStreamer) Err() error {
	return nil
}
