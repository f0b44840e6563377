//go:build windows

package profile

// WebView2 reads its user data folder from this variable.
const userDataEnvName = "WEBVIEW2_USER_DATA_FOLDER"
