// Package runconfig resolves the effective settings of a single Gradle
// launch. A RunConfiguration composes a project's configuration with the
// run's override properties and decides, on every accessor call, whether
// the run or the project supplies the value. ToGradleArguments freezes the
// resolved values into a GradleArguments snapshot for the launcher.
package runconfig
