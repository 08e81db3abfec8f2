// Package connector contains database session implementations used by the provisioner.
package connector
