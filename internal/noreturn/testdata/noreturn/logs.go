// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package noreturn

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"k8s.io/klog"
	klog2 "k8s.io/klog/v2"
)

func zapLog() {
	log := zap.NewNop()

	log.Fatal("") // want "exits"
	log.Panic("") // want "exits"

	sugaredlog := log.Sugar()

	sugaredlog.Fatal()    // want "exits"
	sugaredlog.Fatalf("") // want "exits"
	sugaredlog.Fatalln()  // want "exits"
	sugaredlog.Fatalw("") // want "exits"
	sugaredlog.Panic()    // want "exits"
	sugaredlog.Panicf("") // want "exits"
	sugaredlog.Panicln()  // want "exits"
	sugaredlog.Panicw("") // want "exits"
}

func logrusLog() {
	log := logrus.New()

	log.Exit(1)    // want "exits"
	log.Panic()    // want "exits"
	log.Panicf("") // want "exits"
	log.Panicln()  // want "exits"

	entry := logrus.NewEntry(log)

	entry.Panic()    // want "exits"
	entry.Panicf("") // want "exits"
	entry.Panicln()  // want "exits"
}

func kLog() {
	klog.Exit()        // want "exits"
	klog.ExitDepth(0)  // want "exits"
	klog.Exitf("")     // want "exits"
	klog.Exitln()      // want "exits"
	klog.Fatal()       // want "exits"
	klog.FatalDepth(0) // want "exits"
	klog.Fatalf("")    // want "exits"
	klog.Fatalln()     // want "exits"

	klog2.Exit()        // want "exits"
	klog2.ExitDepth(0)  // want "exits"
	klog2.Exitf("")     // want "exits"
	klog2.Exitln()      // want "exits"
	klog2.Fatal()       // want "exits"
	klog2.FatalDepth(0) // want "exits"
	klog2.Fatalf("")    // want "exits"
	klog2.Fatalln()     // want "exits"
}
