// Package launch turns a resolved GradleArguments snapshot into a Gradle
// command line and runs it. It is the first place the resolved values are
// checked against the file system.
package launch
