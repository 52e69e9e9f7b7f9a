package parser

const qiitaAtomFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xml:lang="ja-JP" xmlns="http://www.w3.org/2005/Atom">
  <id>tag:qiita.com,2012:/advent-calendar/2025/tuat/feed</id>
  <link rel="alternate" type="text/html" href="https://qiita.com"/>
  <title>農工大 Advent Calendarの記事 - Qiita</title>
  <updated>2025-12-17T07:26:38+09:00</updated>
  <entry>
    <id>tag:qiita.com,2012:Public::AdventCalendar::CalendarItem/210090</id>
    <published>2025-12-17T07:26:38+09:00</published>
    <updated>2025-12-17T07:27:30+09:00</updated>
    <link rel="alternate" type="text/html" href="https://qiita.com/s252151u/items/351e671333541251e16d"/>
    <title>JAXのJITコンパイルの挙動を完全に理解した</title>
    <content type="text">未熟な点があるかもしれません...</content>
  </entry>
  <entry>
    <id>tag:qiita.com,2012:Public::AdventCalendar::CalendarItem/212910</id>
    <published>2025-12-17T00:00:00+09:00</published>
    <updated>2025-12-16T18:59:50+09:00</updated>
    <link rel="alternate" type="text/html" href="https://blog.ojii3.dev/2025-12-17-0/"/>
    <title>gwq を nix で入れる</title>
    <content type="text">External article</content>
  </entry>
  <entry>
    <id>tag:qiita.com,2012:Public::AdventCalendar::CalendarItem/204635</id>
    <published>2025-12-16T07:05:44+09:00</published>
    <updated>2025-12-16T07:05:44+09:00</updated>
    <link rel="alternate" type="text/html" href="https://qiita.com/s217969w/items/49198f1806c73f684adb"/>
    <title>【競プロ】すべてのDP問題に対しメモ化再帰を使ってきた話</title>
  </entry>
</feed>`

const rssFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:dc="http://purl.org/dc/elements/1.1/">
<channel>
<title>Test Feed</title>
<link>https://example.com</link>
<item>
<title>Item 1 &amp; friends</title>
<link>https://example.com/item1?a=1&amp;b=2</link>
<pubDate>Wed, 17 Dec 2025 07:00:00 +0900</pubDate>
</item>
<item>
<title>Item 2</title>
<description>no link here</description>
<pubDate>Wed, 17 Dec 2025 08:00:00 +0900</pubDate>
</item>
<item>
<title><![CDATA[Item 3 <b>bold</b> &amp; raw]]></title>
<link>https://example.com/item3</link>
<dc:date>2025-12-16T10:00:00+09:00</dc:date>
</item>
</channel>
</rss>`
