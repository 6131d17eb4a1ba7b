// Copyright © 2022 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/coldwallet-labs/eip712-signer/internal/deviceconfig"
	"github.com/coldwallet-labs/eip712-signer/internal/signermsgs"
)

var sigs = make(chan os.Signal, 1)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "eip712signer",
	Short: "EIP-712 typed-data signer for a trust-isolated device",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "f", "", "config file")
	rootCmd.AddCommand(versionCommand())
	rootCmd.AddCommand(configCommand())
	rootCmd.AddCommand(simulateCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig() {
	deviceconfig.Reset()
}

// bootstrap reads configuration and wires up logging the way every
// subcommand below needs it - mirrors the teacher's single run() funnel,
// just without an RPC server at the end of it.
func bootstrap() (context.Context, context.CancelFunc, error) {
	initConfig()
	err := config.ReadConfig("eip712signer", cfgFile)

	ctx, cancelCtx := context.WithCancel(context.Background())
	ctx = log.WithLogger(ctx, logrus.WithField("pid", fmt.Sprintf("%d", os.Getpid())))
	ctx = log.WithLogger(ctx, logrus.WithField("prefix", "eip712signer"))
	config.SetupLogging(ctx)

	if err != nil {
		cancelCtx()
		return nil, nil, i18n.WrapError(ctx, err, signermsgs.MsgConfigFailed)
	}

	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.L(ctx).Infof("Shutting down due to %s", sig.String())
		cancelCtx()
	}()

	return ctx, cancelCtx, nil
}
