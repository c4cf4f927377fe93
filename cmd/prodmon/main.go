// Command prodmon fuses window-title, input-activity, and camera focus
// signals into a productivity timer, persisting sessions to SQLite and
// publishing timer transitions to MQTT.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ayuss-kr/productivity-monitor/internal/face"
	"github.com/ayuss-kr/productivity-monitor/internal/input"
	"github.com/ayuss-kr/productivity-monitor/internal/logic"
	"github.com/ayuss-kr/productivity-monitor/internal/mqtt"
	"github.com/ayuss-kr/productivity-monitor/internal/screen"
	"github.com/ayuss-kr/productivity-monitor/internal/status"
	"github.com/ayuss-kr/productivity-monitor/internal/store"
	"github.com/ayuss-kr/productivity-monitor/internal/web"
)

// options holds the effective runtime knobs after flag/config merging.
type options struct {
	configPath string
	poll       time.Duration
	grace      time.Duration
	heartbeat  time.Duration
	flush      time.Duration
	focusTTL   time.Duration
	broker     string
	httpAddr   string
	dbPath     string
	focusTopic string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML config file (keyword lists and overrides)")
	flag.DurationVar(&opts.poll, "poll", time.Second, "Signal polling interval")
	flag.DurationVar(&opts.grace, "grace", 15*time.Second, "Grace period before the timer pauses")
	flag.DurationVar(&opts.heartbeat, "heartbeat", 5*time.Minute, "Heartbeat interval (0 to disable)")
	flag.DurationVar(&opts.flush, "flush", 5*time.Second, "Session store flush interval")
	flag.DurationVar(&opts.focusTTL, "focus-ttl", 5*time.Second, "Max age of a face verdict before it reads as not-focused")
	flag.StringVar(&opts.broker, "broker", "tcp://127.0.0.1:1883", "MQTT broker address")
	flag.StringVar(&opts.httpAddr, "http", ":8090", "HTTP status address (empty to disable)")
	flag.StringVar(&opts.dbPath, "db", "./prodmon.db", "SQLite database path")
	flag.StringVar(&opts.focusTopic, "focus-topic", face.DefaultTopic, "MQTT topic carrying camera focus verdicts")
	printClass := flag.Bool("print-class", false, "Classify the current active window and exit")

	flag.Parse()

	cfg := LoadConfig(opts.configPath)
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	mergeConfig(cfg, &opts, set)

	classifier := screen.NewClassifier(cfg.ProductiveKeywords, cfg.UnproductiveKeywords)

	// Print classification mode
	if *printClass {
		titles := screen.NewRealReader()
		defer titles.Close()
		title, err := titles.Title()
		if err != nil {
			log.Fatalf("read active window: %v", err)
		}
		fmt.Printf("%s: %q\n", classifier.Classify(title), title)
		return
	}

	if err := run(opts, classifier); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(opts options, classifier *screen.Classifier) error {
	st, err := store.Open(opts.dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	startTime := time.Now()
	sessionID, err := st.StartSession(startTime)
	if err != nil {
		return fmt.Errorf("punch in: %w", err)
	}
	log.Printf("punched in: session %d", sessionID)

	// Initialize signal sources
	inputs := input.NewWatcher()
	defer inputs.Close()

	titles := screen.NewRealReader()
	defer titles.Close()

	focus, err := face.NewRemote(opts.broker, opts.focusTopic, opts.focusTTL)
	if err != nil {
		return fmt.Errorf("init face feed: %w", err)
	}
	defer focus.Close()

	// Initialize MQTT
	publisher, err := mqtt.NewRealPublisher(opts.broker)
	if err != nil {
		return fmt.Errorf("init mqtt: %w", err)
	}
	defer publisher.Close()

	// Initialize status tracker (before STARTUP so snapshot is available)
	tracker := status.NewTracker(sessionID, startTime, status.Config{
		PollMs:      opts.poll.Milliseconds(),
		GraceMs:     opts.grace.Milliseconds(),
		HeartbeatMs: opts.heartbeat.Milliseconds(),
		FlushMs:     opts.flush.Milliseconds(),
		Broker:      opts.broker,
		HTTPPort:    opts.httpAddr,
		FocusTopic:  opts.focusTopic,
		DBPath:      opts.dbPath,
	})

	// Publish startup event with full status snapshot
	snap := tracker.Snapshot()
	startupEvent := mqtt.SystemEvent{
		Timestamp:  snap.Now,
		Event:      "STARTUP",
		Retained:   true,
		RawPayload: status.FormatStatusEvent(snap, "STARTUP", ""),
	}
	if err := publisher.PublishSystem(startupEvent); err != nil {
		log.Printf("failed to publish startup event: %v", err)
	} else {
		log.Printf("published startup event")
	}

	// Start HTTP status server
	if opts.httpAddr != "" {
		srv := web.New(opts.httpAddr, tracker)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("http server error: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Printf("http status server listening on %s", opts.httpAddr)
	}

	log.Printf("started: poll=%v grace=%v broker=%s heartbeat=%v",
		opts.poll, opts.grace, opts.broker, opts.heartbeat)

	ticker := time.NewTicker(opts.poll)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	loopErr := runLoop(loopEnv{
		inputs:     inputs,
		titles:     titles,
		classifier: classifier,
		focus:      focus,
		publisher:  publisher,
		mqttStatus: publisher,
		tracker:    tracker,
		rec:        st,
		sessionID:  sessionID,
		grace:      opts.grace,
		flush:      opts.flush,
		heartbeat:  opts.heartbeat,
		now:        time.Now,
		tick:       ticker.C,
		sig:        sigCh,
	})

	// Punch out regardless of how the loop ended.
	if err := st.EndSession(sessionID, time.Now()); err != nil {
		log.Printf("punch out error: %v", err)
	} else {
		log.Printf("punched out: session %d", sessionID)
	}
	return loopErr
}

// loopEnv bundles everything runLoop touches, so tests can swap in fakes.
type loopEnv struct {
	inputs     input.Source
	titles     screen.Reader
	classifier *screen.Classifier
	focus      face.Source
	publisher  mqtt.Publisher
	mqttStatus mqtt.ConnectionStatus
	tracker    *status.Tracker
	rec        store.Recorder
	sessionID  int64

	grace     time.Duration
	flush     time.Duration
	heartbeat time.Duration

	now  func() time.Time
	tick <-chan time.Time
	sig  <-chan os.Signal
}

func runLoop(env loopEnv) error {
	start := env.now()
	timer := logic.NewTimer(env.grace, start)

	var (
		lastFlush     = start
		lastElapsed   time.Duration
		prodCarry     time.Duration
		unprodCarry   time.Duration
		lastHeartbeat = start
		curTitle      string
		curClass      logic.Classification = logic.ClassNeutral
		curUsageID    int64
	)

	// flush writes whole-second deltas of the timer's elapsed total; the
	// sub-second remainders carry forward so stored totals track the timer
	// instead of re-deriving time from tick intervals.
	flush := func(t time.Time) {
		elapsed := timer.Elapsed(t)
		prodDelta := elapsed - lastElapsed
		unprodDelta := t.Sub(lastFlush) - prodDelta
		if unprodDelta < 0 {
			unprodDelta = 0
		}
		lastElapsed = elapsed
		lastFlush = t

		prodCarry += prodDelta
		unprodCarry += unprodDelta
		prodSec := int64(prodCarry / time.Second)
		unprodSec := int64(unprodCarry / time.Second)
		prodCarry -= time.Duration(prodSec) * time.Second
		unprodCarry -= time.Duration(unprodSec) * time.Second

		if prodSec == 0 && unprodSec == 0 {
			return
		}
		if err := env.rec.AddSessionTime(env.sessionID, prodSec, unprodSec); err != nil {
			log.Printf("store flush error: %v", err)
		}
	}

	updateTracker := func(t time.Time) {
		if env.tracker == nil {
			return
		}
		env.tracker.Update(timer.State(), timer.Elapsed(t).Seconds(),
			timer.RemainingGrace(t), curClass, curTitle, timer.Counts())
		if env.mqttStatus != nil {
			env.tracker.SetMQTTConnected(env.mqttStatus.IsConnected())
		}
	}

	for {
		select {
		case s := <-env.sig:
			log.Printf("received %v, punching out", s)
			signalName := "UNKNOWN"
			if s == syscall.SIGINT {
				signalName = "SIGINT"
			} else if s == syscall.SIGTERM {
				signalName = "SIGTERM"
			}

			t := env.now()
			flush(t)
			if curUsageID != 0 {
				if err := env.rec.LogAppEnd(curUsageID, t); err != nil {
					log.Printf("app usage close error: %v", err)
				}
			}

			event := mqtt.SystemEvent{
				Timestamp: t,
				Event:     "SHUTDOWN",
				Reason:    signalName,
				Retained:  true,
			}
			if env.tracker != nil {
				updateTracker(t)
				snap := env.tracker.Snapshot()
				event.RawPayload = status.FormatStatusEvent(snap, "SHUTDOWN", signalName)
			}
			if err := env.publisher.PublishSystem(event); err != nil {
				log.Printf("failed to publish shutdown event: %v", err)
			} else {
				log.Printf("published shutdown event")
			}
			return nil

		case <-env.tick:
			t := env.now()

			// A failed sensor read skips the whole tick: no verdict is
			// forced, so a transient fault never starts a grace period.
			activity, err := env.inputs.ReadAndReset()
			if err != nil {
				log.Printf("input read error: %v", err)
				continue
			}
			title, err := env.titles.Title()
			if err != nil {
				log.Printf("window title read error: %v", err)
				continue
			}
			focused, err := env.focus.Focused()
			if err != nil {
				log.Printf("focus read error: %v", err)
				continue
			}

			class := env.classifier.Classify(title)
			verdict := logic.Fuse(logic.Signals{
				Activity: activity,
				Screen:   class,
				Focused:  focused,
			})

			if tr := timer.Update(verdict, t); tr != nil {
				log.Printf("timer: %s -> %s (elapsed %s)",
					tr.From, tr.To, status.FormatHMS(tr.Elapsed.Seconds()))
				if err := env.publisher.Publish(*tr); err != nil {
					log.Printf("publish error: %v", err)
					// Don't crash on publish failure
				}
			}

			// App usage spans follow the active window.
			if title != curTitle {
				if curUsageID != 0 {
					if err := env.rec.LogAppEnd(curUsageID, t); err != nil {
						log.Printf("app usage close error: %v", err)
					}
					curUsageID = 0
				}
				if title != "" {
					id, err := env.rec.LogAppStart(env.sessionID, title, string(class), t)
					if err != nil {
						log.Printf("app usage open error: %v", err)
					} else {
						curUsageID = id
					}
				}
				curTitle = title
			}
			curClass = class

			if env.flush > 0 && t.Sub(lastFlush) >= env.flush {
				flush(t)
			}

			// Check for heartbeat
			if env.heartbeat > 0 && t.Sub(lastHeartbeat) >= env.heartbeat {
				lastHeartbeat = t
				counts := timer.Counts()
				log.Printf("heartbeat: uptime=%v elapsed=%s runs=%d graces=%d pauses=%d",
					t.Sub(start).Truncate(time.Second),
					status.FormatHMS(timer.Elapsed(t).Seconds()),
					counts.Running, counts.Grace, counts.Paused)

				hbEvent := mqtt.SystemEvent{
					Timestamp: t,
					Event:     "HEARTBEAT",
				}
				if env.tracker != nil {
					updateTracker(t)
					snap := env.tracker.Snapshot()
					hbEvent.RawPayload = status.FormatStatusEvent(snap, "HEARTBEAT", "")
				}
				if err := env.publisher.PublishSystem(hbEvent); err != nil {
					log.Printf("heartbeat publish error: %v", err)
				}
			}

			// Update status tracker for HTTP consumers
			updateTracker(t)
		}
	}
}
