package maze_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestMaze(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Maze Suite")
}
