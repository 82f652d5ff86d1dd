package names_test

import (
	. "github.com/localclaim/localclaim/src/localclaim/names"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParseFQDN", func() {
	It("accepts a name with a trailing dot", func() {
		n, err := ParseFQDN("myhost.local.")

		Expect(err).ShouldNot(HaveOccurred())
		Expect(n).To(Equal(FQDN("myhost.local.")))
	})

	It("rejects an empty name", func() {
		_, err := ParseFQDN("")

		Expect(err).Should(HaveOccurred())
	})

	It("rejects a name without a trailing dot", func() {
		_, err := ParseFQDN("myhost.local")

		Expect(err).Should(HaveOccurred())
	})

	It("rejects a name with a leading dot", func() {
		_, err := ParseFQDN(".local.")

		Expect(err).Should(HaveOccurred())
	})
})

var _ = Describe("FQDN", func() {
	Describe("Labels", func() {
		It("returns the DNS labels that form the name", func() {
			Expect(FQDN("myhost.local.").Labels()).To(Equal(
				[]Label{"myhost", "local"},
			))
		})
	})

	Describe("Qualify", func() {
		It("returns the name unchanged", func() {
			n := FQDN("myhost.local.")

			Expect(n.Qualify("example.org.")).To(Equal(n))
		})
	})
})

var _ = Describe("Parse", func() {
	It("parses a dotless name as a host", func() {
		n, err := Parse("myhost")

		Expect(err).ShouldNot(HaveOccurred())
		Expect(n).To(Equal(Host("myhost")))
	})

	It("parses a dotted name as fully qualified", func() {
		n, err := Parse("myhost.local.")

		Expect(err).ShouldNot(HaveOccurred())
		Expect(n).To(Equal(FQDN("myhost.local.")))
	})

	It("rejects a dotted name without a trailing dot", func() {
		_, err := Parse("myhost.local")

		Expect(err).Should(HaveOccurred())
	})
})
