// Package app contains the application logic of gradlerun: it loads the
// settings files, resolves the requested runs, and either prints the
// resulting Gradle invocations or launches them. It is decoupled from the
// command line, which only produces a Config.
package app
