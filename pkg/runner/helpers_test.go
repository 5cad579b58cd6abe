package runner

import (
	"io/fs"
	"time"
)

// mockFileSystem is a test double for FileSystem.
type mockFileSystem struct {
	StatFunc func(name string) (fs.FileInfo, error)
}

func (m *mockFileSystem) Stat(name string) (fs.FileInfo, error) {
	return m.StatFunc(name)
}

type mockFileInfo struct {
	name string
	mode fs.FileMode
}

func (m mockFileInfo) Name() string       { return m.name }
func (m mockFileInfo) Size() int64        { return 0 }
func (m mockFileInfo) Mode() fs.FileMode  { return m.mode }
func (m mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m mockFileInfo) IsDir() bool        { return m.mode.IsDir() }
func (m mockFileInfo) Sys() any           { return nil }

// filesAt returns a file system where only the given paths exist, as regular
// files.
func filesAt(paths ...string) *mockFileSystem {
	return &mockFileSystem{
		StatFunc: func(name string) (fs.FileInfo, error) {
			for _, p := range paths {
				if p == name {
					return mockFileInfo{name: name, mode: 0o755}, nil
				}
			}
			return nil, fs.ErrNotExist
		},
	}
}

const (
	testApp           = "/app"
	testBin           = "/app/node_modules/.bin"
	testWebpackBin    = "/app/node_modules/.bin/webpack"
	testWebpackConfig = "/app/config/webpack/webpack.config.js"
	testShakaConfig   = "/app/config/shakapacker.yml"
)

func testOptions(fsys FileSystem) Options {
	return Options{
		AppPath:            testApp,
		ShakapackerConfig:  testShakaConfig,
		WebpackConfig:      testWebpackConfig,
		NodeModulesBinPath: testBin,
		FS:                 fsys,
	}
}
