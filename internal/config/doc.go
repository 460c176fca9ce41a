// Package config loads the server endpoint and keeps user preferences.
//
// Sources & precedence for the endpoint (later wins):
//
//  1. Built-in defaults (localhost:8080).
//  2. Optional .env file in the config directory. It is read as a layer,
//     not exported into the process environment.
//  3. Optional config.yaml in the config directory.
//  4. Environment variables SERVER_HOST, SERVER_PORT, DOWNLOAD_DIR,
//     LOG_LEVEL and LOG_FORMAT.
//
// Example config.yaml:
//
//	server_host: files.internal
//	server_port: 9000
//	download_dir: /srv/incoming
//	log_level: debug
//
// User preferences (download directory, language, reveal after save) live
// in the Fyne preferences store, see Settings.
package config
