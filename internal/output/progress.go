package output

import (
	"sync"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/log"
)

// NopProgress discards phase updates.
type NopProgress struct{}

func (NopProgress) Phase(string) {}
func (NopProgress) Done()        {}

// SpinnerProgress shows a spinner titled with the current phase. When stdout
// is not a terminal each phase is logged at info level instead.
type SpinnerProgress struct {
	logger *log.Logger
	tty    bool

	mu      sync.Mutex
	stop    chan struct{}
	stopped chan struct{}
}

// NewSpinnerProgress returns a progress display. A nil logger uses Logger.
func NewSpinnerProgress(logger *log.Logger) *SpinnerProgress {
	if logger == nil {
		logger = Logger
	}
	return &SpinnerProgress{logger: logger, tty: IsTTY()}
}

// Phase replaces the running spinner with one titled label.
func (p *SpinnerProgress) Phase(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.tty {
		p.logger.Info(label + "...")
		return
	}
	p.halt()

	stop := make(chan struct{})
	stopped := make(chan struct{})
	p.stop, p.stopped = stop, stopped

	s := spinner.New().Title(label + "...").Action(func() { <-stop })
	go func() {
		defer close(stopped)
		if err := s.Run(); err != nil {
			p.logger.Debug("spinner stopped", "error", err)
		}
	}()
}

// Done stops the spinner. It is safe to call more than once.
func (p *SpinnerProgress) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.halt()
}

// halt must be called with p.mu held.
func (p *SpinnerProgress) halt() {
	if p.stop == nil {
		return
	}
	close(p.stop)
	<-p.stopped
	p.stop, p.stopped = nil, nil
}
