package scaffold

var docsFiles = []FileSpec{
	{
		Path: "README.md",
		Template: `# {{ .Name }}

{{ .Description }}

## Getting Started

Describe installation and first use here.

## Documentation

- [Architecture](docs/architecture.md)
- [API](docs/api.md)
- [Contributing](CONTRIBUTING.md)
- [Changelog](CHANGELOG.md)
`,
	},
	{
		Path: "docs/architecture.md",
		Template: `# Architecture

## Overview

Describe the major components of {{ .Name }} and how they interact.

## Components

| Component | Responsibility |
|-----------|----------------|
| TODO      | TODO           |

## Data Flow

Describe how data moves through the system.

## Decisions

Record significant design decisions and their rationale here.
`,
	},
	{
		Path: "docs/api.md",
		Template: `# API Reference

## Overview

Document the public interface of {{ .Name }}.

## Endpoints

### ` + "`GET /example`" + `

| Field | Type | Description |
|-------|------|-------------|
| TODO  | TODO | TODO        |
`,
	},
	{
		Path: "CONTRIBUTING.md",
		Template: `# Contributing to {{ .Name }}

## Development Setup

Describe how to set up a development environment.

## Pull Requests

- Keep changes focused; one concern per pull request.
- Include tests for behavior changes.
- Update documentation alongside code.

## Reporting Issues

Include reproduction steps, expected behavior, and actual behavior.
`,
	},
	{
		Path: "CHANGELOG.md",
		Template: `# Changelog

All notable changes to {{ .Name }} are documented here.

## [Unreleased]

### Added

### Changed

### Fixed
`,
	},
}
