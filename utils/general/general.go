package generalutils

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
)

type GeneralUtilsInterface interface {
	CheckAWSCLI() error
	HandleSignals() context.Context
}

type DefaultGeneralUtilsManager struct{}

var execLookPath = exec.LookPath

func (d *DefaultGeneralUtilsManager) CheckAWSCLI() error {
	_, err := execLookPath("aws")
	if err != nil {
		return fmt.Errorf("AWS CLI not found: %w", err)
	}
	return nil
}

func (d *DefaultGeneralUtilsManager) HandleSignals() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		fmt.Printf("Received termination signal: %v\n", sig)
		cancel()
	}()

	return ctx
}

func NewGeneralUtilsManager() GeneralUtilsInterface {
	return &DefaultGeneralUtilsManager{}
}
