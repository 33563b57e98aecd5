//nolint:gosec
package main

import (
	"bytes"
	"encoding/binary"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/go-redis/redis/v7"
	"github.com/phayes/freeport"
)

type fixture struct {
	Name string
	Data []byte
}

func main() {
	withRedis := flag.Bool("redis", false, "load fixtures into a Redis container")
	flag.Parse()

	fixtures := []fixture{
		{Name: "u16_pair", Data: makeFixture(func(buf *bytes.Buffer) {
			write(buf, binary.BigEndian, uint16(1))
			write(buf, binary.BigEndian, uint16(2))
		})},
		{Name: "mixed", Data: makeFixture(func(buf *bytes.Buffer) {
			write(buf, binary.BigEndian, uint32(0xcafebabe))
			write(buf, binary.LittleEndian, uint16(0x0102))
			write(buf, binary.LittleEndian, int8(-1))
			buf.WriteString("hello\x00")
			pad(buf, 4)
			write(buf, binary.BigEndian, int64(-2))
		})},
		{Name: "unterminated", Data: []byte("abc")},
	}

	for _, f := range fixtures {
		writeFixture(f)
	}

	if !*withRedis {
		return
	}

	port, err := freeport.GetFreePort()

	if err != nil {
		panic(err)
	}

	redisID, err := startRedisContainer(port)

	if err != nil {
		panic(err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("localhost:%d", port),
	})

	defer client.Close()

	for _, f := range fixtures {
		log.Printf("Storing fixture in Redis: %s\n", f.Name)

		if err := client.Set(f.Name, f.Data, 0).Err(); err != nil {
			_ = stopDockerContainer(redisID)
			panic(err)
		}
	}

	log.Printf("Try: binreader --redis-addr localhost:%d --redis-key mixed --layout u32,le,u16,i8,cstr,align:4,be,i64\n", port)
	log.Printf("Stop the container with: docker rm -f %s\n", redisID)
}

func makeFixture(fn func(buf *bytes.Buffer)) []byte {
	var buf bytes.Buffer
	fn(&buf)
	return buf.Bytes()
}

func write(buf *bytes.Buffer, order binary.ByteOrder, value interface{}) {
	if err := binary.Write(buf, order, value); err != nil {
		panic(err)
	}
}

func pad(buf *bytes.Buffer, boundary int) {
	for buf.Len()%boundary != 0 {
		buf.WriteByte(0)
	}
}

func writeFixture(f fixture) {
	dst := filepath.Join("fixtures", f.Name+".bin")

	log.Printf("Writing fixture to %s\n", dst)

	if err := os.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
		panic(err)
	}

	if err := ioutil.WriteFile(dst, f.Data, 0o644); err != nil {
		panic(err)
	}
}

func startRedisContainer(port int) (string, error) {
	log.Printf("Starting Redis container (port=%d)", port)

	var out bytes.Buffer
	cmd := exec.Command("docker", "run",
		"-d",
		"-p", fmt.Sprintf("%d:%d", port, 6379),
		"redis:alpine",
	)
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", err
	}

	id := strings.TrimSpace(out.String())

	log.Printf("Redis container started: %s\n", id)
	return id, nil
}

func stopDockerContainer(id string) error {
	log.Printf("Stopping Docker container: %s\n", id)
	return exec.Command("docker", "rm", "-f", id).Run()
}
