// Package hcl loads Gradle workspace, project and run settings from HCL
// files and translates them into the format-agnostic config model.
//
// A settings file may contain at most one workspace block and any number of
// project and run blocks:
//
//	workspace {
//	  gradle_distribution = "wrapper"
//	}
//
//	project "app" {
//	  project_dir                 = "./app"
//	  override_workspace_settings = true
//	  gradle_distribution         = "4.9"
//	  jvm_arguments               = "-Xmx1g -Dfile.encoding=UTF-8"
//	}
//
//	run "build" {
//	  project = "app"
//	  tasks   = ["clean", "build"]
//	}
//
// Expressions can read environment variables through the env object, for
// example gradle_user_home = "${env.HOME}/.gradle".
package hcl
