package util

import (
	"os"
	"path"
	"strings"
)

// WriteToFile writes the given lines to a file, creating parent directories
// as needed
func WriteToFile(savePath string, content ...string) error {
	if dir := path.Dir(savePath); dir != "." {
		os.MkdirAll(dir, 0777)
	}
	return os.WriteFile(savePath, []byte(strings.Join(content, "\n")+"\n"), 0644)
}

// AppendToFile appends the given lines to a file, creating it when missing
func AppendToFile(savePath string, content ...string) error {
	if dir := path.Dir(savePath); dir != "." {
		os.MkdirAll(dir, 0777)
	}
	f, err := os.OpenFile(savePath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, s := range content {
		if _, err = f.WriteString(s + "\n"); err != nil {
			return err
		}
	}
	return nil
}
