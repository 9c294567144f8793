/*
Copyright 2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/reqres/pkg/constants"
	"github.com/unikorn-cloud/reqres/pkg/probe"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	"sigs.k8s.io/controller-runtime/pkg/manager/signals"
)

func main() {
	var options probe.Options

	options.AddFlags(pflag.CommandLine)

	zapFlags := flag.NewFlagSet("zap", flag.ExitOnError)

	zapOptions := zap.Options{}
	zapOptions.BindFlags(zapFlags)

	pflag.CommandLine.AddGoFlagSet(zapFlags)
	pflag.Parse()

	log.SetLogger(zap.New(zap.UseFlagOptions(&zapOptions)))

	logger := log.Log.WithName("init")
	logger.Info("probe starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision, "baseURL", options.BaseURL)

	ctx := log.IntoContext(signals.SetupSignalHandler(), log.Log.WithName("probe"))

	prober, err := probe.NewFromOptions(ctx, &options)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := prober.Run(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
