// Package v1alpha1 contains the connection parameter record shared by both
// acquisition strategies (config file and interactive prompt).
package v1alpha1
