package skip

import (
	"testing"

	"github.com/vovakirdan/skipstone/internal/config"
)

func TestCameraFollowsForward(t *testing.T) {
	cfg := config.DefaultSkipConfig().Camera
	var c Camera

	for i := 0; i < 500; i++ {
		c.Follow(1000, -50, 320, 192, cfg)
	}

	want := 1000 - cfg.LeadOffset
	if c.X < want-1 || c.X > want+1 {
		t.Errorf("camera should converge on the lead point, x=%f want ~%f", c.X, want)
	}
}

func TestCameraNeverBehindStart(t *testing.T) {
	cfg := config.DefaultSkipConfig().Camera
	var c Camera

	for i := 0; i < 100; i++ {
		c.Follow(0, -10, 320, 192, cfg)
		if c.X < 0 {
			t.Fatalf("camera x went negative: %f", c.X)
		}
	}
}

func TestCameraPansUpForHighStone(t *testing.T) {
	cfg := config.DefaultSkipConfig().Camera
	var c Camera

	c.Follow(100, -500, 320, 192, cfg)

	if c.Y >= 0 {
		t.Errorf("camera should pan up for a high stone, y=%f", c.Y)
	}
}

func TestCameraReturnsToWaterAndNeverBelow(t *testing.T) {
	cfg := config.DefaultSkipConfig().Camera
	var c Camera

	// Pan up first, then follow a stone at the surface.
	for i := 0; i < 50; i++ {
		c.Follow(100, -500, 320, 192, cfg)
	}
	up := c.Y

	for i := 0; i < 500; i++ {
		c.Follow(100, -5, 320, 192, cfg)
		if c.Y > 0 {
			t.Fatalf("camera y went positive: %f", c.Y)
		}
	}

	if c.Y <= up {
		t.Errorf("camera should ease back toward the water line, y=%f was %f", c.Y, up)
	}
}

func TestCameraShakeDecays(t *testing.T) {
	cfg := config.DefaultSkipConfig().Camera
	var c Camera

	c.AddShake(3.0, cfg)
	if c.Shake != 3.0 {
		t.Fatalf("expected shake 3.0, got %f", c.Shake)
	}

	for i := 0; i < 1000 && c.Shake > 0; i++ {
		c.Follow(100, -10, 320, 192, cfg)
	}

	if c.Shake != 0 {
		t.Errorf("shake should decay to exactly zero, got %f", c.Shake)
	}
}

func TestCameraShakeCappedAndMonotone(t *testing.T) {
	cfg := config.DefaultSkipConfig().Camera
	var c Camera

	c.AddShake(cfg.ShakeMax*10, cfg)
	if c.Shake > cfg.ShakeMax {
		t.Errorf("shake %f exceeds cap %f", c.Shake, cfg.ShakeMax)
	}

	before := c.Shake
	c.AddShake(0.1, cfg)
	if c.Shake < before {
		t.Errorf("a weaker shake must not reduce an ongoing one: %f -> %f", before, c.Shake)
	}
}
