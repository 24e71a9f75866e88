// Package cdp backs the capture engine with headless Chrome over the
// DevTools protocol.
package cdp

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
)

const (
	defaultViewportWidth  = 1200
	defaultViewportHeight = 900
)

// Config controls browser launch.
type Config struct {
	ViewportWidth  int
	ViewportHeight int
}

// Engine implements capture.Engine on a dedicated headless browser tab.
type Engine struct {
	ctx     context.Context
	cancels []context.CancelFunc
}

// New launches a headless browser and prepares a tab with the configured
// viewport. Close must be called to release the browser.
func New(ctx context.Context, cfg Config) (*Engine, error) {
	if cfg.ViewportWidth <= 0 {
		cfg.ViewportWidth = defaultViewportWidth
	}
	if cfg.ViewportHeight <= 0 {
		cfg.ViewportHeight = defaultViewportHeight
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)

	e := &Engine{
		ctx:     tabCtx,
		cancels: []context.CancelFunc{cancelTab, cancelAlloc},
	}

	if err := chromedp.Run(tabCtx,
		chromedp.EmulateViewport(int64(cfg.ViewportWidth), int64(cfg.ViewportHeight)),
	); err != nil {
		e.Close()
		return nil, err
	}
	return e, nil
}

// Close tears down the tab and the browser process.
func (e *Engine) Close() {
	for _, cancel := range e.cancels {
		cancel()
	}
}

func (e *Engine) Navigate(ctx context.Context, url string) error {
	return e.run(ctx, chromedp.Navigate(url))
}

func (e *Engine) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return e.run(waitCtx, chromedp.WaitVisible(selector, chromedp.ByQuery))
}

func (e *Engine) Click(ctx context.Context, selector string) error {
	return e.run(ctx, chromedp.Click(selector, chromedp.NodeVisible, chromedp.ByQuery))
}

func (e *Engine) Evaluate(ctx context.Context, script string, out any) error {
	return e.run(ctx, chromedp.Evaluate(script, out,
		func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		},
	))
}

func (e *Engine) Screenshot(ctx context.Context, selector string) ([]byte, error) {
	var buf []byte
	if err := e.run(ctx, chromedp.Screenshot(selector, &buf, chromedp.NodeVisible, chromedp.ByQuery)); err != nil {
		return nil, err
	}
	return buf, nil
}

func (e *Engine) run(ctx context.Context, actions ...chromedp.Action) error {
	merged, release := e.tab(ctx)
	defer release()
	return chromedp.Run(merged, actions...)
}

// tab scopes the browser tab's context to the caller's cancellation. The
// returned release func must be called when the action completes; it detaches
// the caller watch so nothing outlives the call.
func (e *Engine) tab(ctx context.Context) (context.Context, func()) {
	merged, cancel := context.WithCancel(e.ctx)
	stop := context.AfterFunc(ctx, cancel)
	return merged, func() {
		stop()
		cancel()
	}
}
