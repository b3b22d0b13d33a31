// Package config provides configuration parsing for the tagmaker CLI.
//
// The configuration is stored in tagmaker.json, by default in the
// working directory. This package handles loading, saving, and
// validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "escape": false,
//	  "log": {
//	    "level": "info"
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "tagmaker"
//	  },
//	  "tracing": {
//	    "enabled": false,
//	    "tracerName": "tagmaker",
//	    "includeInput": false
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Level:", cfg.Log.Level)
package config
