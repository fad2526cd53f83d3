// Package config provides editor settings for gaptext.
//
// Settings are resolved from three layers, lowest priority first:
//
//  1. Built-in defaults (Default)
//  2. A configuration file, TOML or YAML by extension
//  3. Environment variables prefixed with GAPTEXT_
//
// A missing configuration file is not an error; the defaults apply.
//
// Basic usage:
//
//	s, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    return err
//	}
//	session := engine.New(s.EngineOptions()...)
package config
