// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package co

import "sync"

// Goes tracks a set of goroutines so a caller can wait for all of them
// to return, used throughout runtime.NodeRuntime to supervise its actor
// goroutines (spec §5 "A supervisory task tree mirrors component
// boundaries").
type Goes struct {
	wg sync.WaitGroup
}

// Go starts f in a new goroutine tracked by this Goes.
func (g *Goes) Go(f func()) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		f()
	}()
}

// Wait blocks until every goroutine started via Go has returned.
func (g *Goes) Wait() {
	g.wg.Wait()
}
