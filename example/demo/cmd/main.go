// Package main walks through the abstract data types: it builds fractions, complex numbers
// and stacks, logs every result as structured JSON and reports failed operations.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/abstract-data-types-go/complexnum"
	"github.com/AntonStoeckl/abstract-data-types-go/fraction"
	"github.com/AntonStoeckl/abstract-data-types-go/stack"
)

const (
	defaultFixedCapacity = 2
	logMsgResult         = "result"
	logMsgRejected       = "operation rejected"
	logAttrOperation     = "operation"
	logAttrValue         = "value"
	logAttrJSON          = "json"
	logAttrError         = "error"
)

type Config struct {
	FixedCapacity int
	Debug         bool
}

func main() {
	cfg := parseFlags()

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	runFractions(logger)
	runComplexNumbers(logger)

	if err := runStacks(logger, cfg); err != nil {
		log.Fatalf("Failed to run stack demo: %v", err)
	}
}

func parseFlags() Config {
	var (
		fixedCapacity = flag.Int("fixed-capacity", defaultFixedCapacity, "Maximum length of the demo FixedStack")
		debug         = flag.Bool("debug", false, "Log debug records of the stacks")
	)

	flag.Parse()

	return Config{
		FixedCapacity: *fixedCapacity,
		Debug:         *debug,
	}
}

func runFractions(logger *slog.Logger) {
	a, err := fraction.New(6, -8)
	if err != nil {
		logRejected(logger, "new fraction", err)
		return
	}

	logResult(logger, "new fraction 6/-8", a)

	b, _ := fraction.New(1, 3)

	sum, err := a.Add(b)
	report(logger, "(-3/4) + (1/3)", sum, err)

	power, err := a.Power(-2)
	report(logger, "(-3/4) ^ -2", power, err)

	floor, err := a.FloorDivide(b)
	report(logger, "(-3/4) // (1/3)", floor, err)

	less, err := a.Less(fraction.Whole(0))
	if err != nil {
		logRejected(logger, "(-3/4) < 0", err)
	} else {
		logger.Info(logMsgResult, logAttrOperation, "(-3/4) < 0", logAttrValue, less)
	}

	_, err = a.Divide(fraction.Zero)
	logRejected(logger, "(-3/4) / 0", err)
}

func runComplexNumbers(logger *slog.Logger) {
	a := complexnum.New(3, 4)
	logger.Info(logMsgResult, logAttrOperation, "|3 + 4i|", logAttrValue, a.Magnitude())

	product, err := a.Multiply(a.Conjugate())
	report(logger, "(3 + 4i) * (3 - 4i)", product, err)

	quotient, err := a.Divide(complexnum.New(1, -2))
	report(logger, "(3 + 4i) / (1 - 2i)", quotient, err)

	scaled, err := a.Multiply(complexnum.Scalar(0.5))
	report(logger, "(3 + 4i) * 0.5", scaled, err)

	_, err = a.Divide(complexnum.Complex{})
	logRejected(logger, "(3 + 4i) / 0", err)
}

func runStacks(logger *slog.Logger, cfg Config) error {
	s, err := stack.New[int](stack.WithLogger(logger))
	if err != nil {
		return err
	}

	for i := 1; i <= 3; i++ {
		s.Push(i)
	}

	logger.Info(logMsgResult, logAttrOperation, "stack after pushing 1 2 3", logAttrValue, s.String())

	for !s.IsEmpty() {
		item, _ := s.Pop()
		logger.Info(logMsgResult, logAttrOperation, "pop", logAttrValue, item)
	}

	_, err = s.Pop()
	logRejected(logger, "pop on empty stack", err)

	fixed, err := stack.NewFixed[string](cfg.FixedCapacity, stack.WithLogger(logger))
	if err != nil {
		return err
	}

	for _, item := range []string{"A", "B", "C"} {
		if pushErr := fixed.Push(item); pushErr != nil {
			logRejected(logger, "push "+item, pushErr)
		}
	}

	if err = fixed.Extend(fixed.Cap() + 1); err != nil {
		return err
	}

	if err = fixed.Push("C"); err != nil {
		return err
	}

	logger.Info(logMsgResult, logAttrOperation, "fixed stack after extend", logAttrValue, fixed.String())

	return nil
}

func report(logger *slog.Logger, operation string, value any, err error) {
	if err != nil {
		logRejected(logger, operation, err)
		return
	}

	logResult(logger, operation, value)
}

func logResult(logger *slog.Logger, operation string, value any) {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(value)
	if err != nil {
		logRejected(logger, operation, err)
		return
	}

	logger.Info(
		logMsgResult,
		logAttrOperation, operation,
		logAttrValue, fmt.Sprint(value),
		logAttrJSON, string(data),
	)
}

func logRejected(logger *slog.Logger, operation string, err error) {
	logger.Warn(logMsgRejected, logAttrOperation, operation, logAttrError, err.Error())
}
