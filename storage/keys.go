package storage

import (
	"strings"

	"github.com/google/uuid"
)

// UniqueFilename prefixes the original filename with a fresh random
// identifier so concurrent uploads of the same name never collide.
func UniqueFilename(original string) string {
	return uuid.NewString() + "_" + original
}

// MediaKey builds the storage key for an original upload.
// Layout: {ownerId}/{albumId}/{filename}
func MediaKey(ownerID, albumID, filename string) string {
	return ownerID + "/" + albumID + "/" + filename
}

// ThumbnailKey builds the storage key for a derived thumbnail.
// Layout: {ownerId}/{albumId}/thumbnails/{filename}
func ThumbnailKey(ownerID, albumID, filename string) string {
	return ownerID + "/" + albumID + "/thumbnails/" + filename
}

// ProfileKey builds the storage key for an account's avatar.
// Layout: profiles/{ownerId}/{filename}
func ProfileKey(ownerID, filename string) string {
	return "profiles/" + ownerID + "/" + filename
}

// FilenameFromURL returns the trailing path segment of an object URL.
// Media records store full URLs; deletion rebuilds keys from this.
func FilenameFromURL(url string) string {
	idx := strings.LastIndex(url, "/")
	if idx < 0 {
		return url
	}
	return url[idx+1:]
}
