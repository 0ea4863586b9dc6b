// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simulated

import (
	"fmt"
	"time"
)

// swapchainImages is the ring length of every simulated swapchain.
const swapchainImages = 3

// Swapchain is the simulated [xr.Swapchain]: a ring of fake texture
// names with strict acquire, wait, release ordering.
type Swapchain struct {
	images []uint32
	width  int
	height int
	format int64

	next      int
	acquired  int
	waited    bool
	destroyed bool
}

func (sc *Swapchain) Acquire() (int, error) {
	if sc.destroyed {
		return 0, fmt.Errorf("swapchain is destroyed")
	}
	if sc.acquired >= 0 {
		return 0, fmt.Errorf("image %d is already acquired", sc.acquired)
	}
	sc.acquired = sc.next
	sc.next = (sc.next + 1) % len(sc.images)
	sc.waited = false
	return sc.acquired, nil
}

func (sc *Swapchain) Wait(timeout time.Duration) error {
	if sc.acquired < 0 {
		return fmt.Errorf("no image is acquired")
	}
	sc.waited = true
	return nil
}

func (sc *Swapchain) Release() error {
	if sc.acquired < 0 {
		return fmt.Errorf("no image is acquired")
	}
	if !sc.waited {
		return fmt.Errorf("image %d was not waited for", sc.acquired)
	}
	sc.acquired = -1
	return nil
}

func (sc *Swapchain) Texture(i int) uint32 {
	return sc.images[i]
}

func (sc *Swapchain) Size() (width, height int) {
	return sc.width, sc.height
}

func (sc *Swapchain) Format() int64 {
	return sc.format
}

func (sc *Swapchain) Destroy() error {
	if sc.destroyed {
		return fmt.Errorf("swapchain already destroyed")
	}
	sc.destroyed = true
	return nil
}
