/*
   Copyright 2026 The smtkv authors

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

package log

import (
	"os"
	"testing"
)

func TestLogLevels(t *testing.T) {
	SetLogger("TestDebug", DEBUG)

	Debug("print driven development")
	Infof("hello %s", "world")

	SetLogger("TestSilent", SILENT)

	Debug("this should go nowhere")
}

func TestErrorDoesOsExit(t *testing.T) {

	exited := false
	osExit = func(code int) {
		exited = true
	}
	defer func() { osExit = os.Exit }()

	SetLogger("TestError", ERROR)
	Error("boom")

	if !exited {
		t.Fatal("log.Error should exit the process")
	}
}
